package bytes_int

import "testing"
import "github.com/stretchr/testify/assert"

func TestAddCountHas(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()

	x.Nil(b.Add([]byte("one"), 1))
	x.Nil(b.Add([]byte("one"), 2))
	x.Nil(b.Add([]byte("two"), 3))

	x.Equal(3, b.Size())
	count, err := b.Count([]byte("one"))
	x.Nil(err)
	x.Equal(2, count)
	has, err := b.Has([]byte("two"))
	x.Nil(err)
	x.True(has)
	has, err = b.Has([]byte("three"))
	x.Nil(err)
	x.False(has)
}

func TestFind(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()

	x.Nil(b.Add([]byte("k"), 10))
	x.Nil(b.Add([]byte("k"), 20))
	x.Nil(b.Add([]byte("other"), 30))

	values := make([]int32, 0, 2)
	err = Do(func() (Iterator, error) {
		return b.Find([]byte("k"))
	}, func(key []byte, value int32) error {
		x.Equal([]byte("k"), key)
		values = append(values, value)
		return nil
	})
	x.Nil(err)
	x.Equal(2, len(values))
}

func TestIterate(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()

	x.Nil(b.Add([]byte("a"), 1))
	x.Nil(b.Add([]byte("b"), 2))
	x.Nil(b.Add([]byte("c"), 3))

	total := 0
	err = Do(b.Iterate, func(key []byte, value int32) error {
		total += int(value)
		return nil
	})
	x.Nil(err)
	x.Equal(6, total)

	keys := make([]string, 0, 3)
	ki, err := b.Keys()
	x.Nil(err)
	var k []byte
	for k, err, ki = ki(); ki != nil; k, err, ki = ki() {
		x.Nil(err)
		keys = append(keys, string(k))
	}
	x.Equal([]string{"a", "b", "c"}, keys)

	sum := int32(0)
	vi, err := b.Values()
	x.Nil(err)
	var v int32
	for v, err, vi = vi(); vi != nil; v, err, vi = vi() {
		x.Nil(err)
		sum += v
	}
	x.Equal(int32(6), sum)
}
