package graph

import (
	"fmt"
)

// Labels maps label strings to dense integer colors. One Labels dictionary
// is shared by every graph in a database so equal labels get equal colors.
type Labels struct {
	colors map[string]int
	labels []string
}

func NewLabels() *Labels {
	return &Labels{
		colors: make(map[string]int),
		labels: make([]string, 0, 10),
	}
}

func (c *Labels) Color(label string) int {
	if color, has := c.colors[label]; has {
		return color
	}
	color := len(c.labels)
	c.colors[label] = color
	c.labels = append(c.labels, label)
	return color
}

func (c *Labels) Label(color int) string {
	if color < 0 || color >= len(c.labels) {
		return fmt.Sprintf("color-[%d]", color)
	}
	return c.labels[color]
}

func (c *Labels) Size() int {
	return len(c.labels)
}
