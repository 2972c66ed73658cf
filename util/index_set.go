package util

import (
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/dolthub/swiss"
)

// IndexSet is a set of global output indexes. It is not safe for concurrent use.
type IndexSet struct {
	m *swiss.Map[uint64, struct{}]
}

// NewIndexSet returns an empty set sized for roughly length entries.
func NewIndexSet(length int) *IndexSet {
	size, err := safeconversion.IntToUint32(length)
	if err != nil {
		size = 0
	}

	return &IndexSet{
		m: swiss.NewMap[uint64, struct{}](size),
	}
}

// Put adds index and reports whether it was not already present.
func (s *IndexSet) Put(index uint64) bool {
	if s.m.Has(index) {
		return false
	}

	s.m.Put(index, struct{}{})

	return true
}

func (s *IndexSet) Exists(index uint64) bool {
	return s.m.Has(index)
}

func (s *IndexSet) Length() int {
	return s.m.Count()
}
