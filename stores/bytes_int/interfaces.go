package bytes_int

type MultiMap interface {
	Keys() (BytesIterator, error)
	Values() (IntIterator, error)
	Iterate() (Iterator, error)
	Find(key []byte) (Iterator, error)
	Has(key []byte) (bool, error)
	Count(key []byte) (int, error)
	Add(key []byte, value int32) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() ([]byte, int32, error, Iterator)
type IntIterator func() (int32, error, IntIterator)
type BytesIterator func() ([]byte, error, BytesIterator)

func Do(run func() (Iterator, error), do func(key []byte, value int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key []byte
	var value int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}
