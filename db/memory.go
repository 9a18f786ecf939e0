package db

import (
	"context"
	"sync"

	"storefront-voting/model"
)

var _ CounterStore = (*MemoryStore)(nil)

type memoryTable struct {
	order  []model.PostalCode
	counts map[model.PostalCode]int64
}

// MemoryStore is safe for concurrent use. Scan returns rows in first-insert
// order.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string]*memoryTable
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*memoryTable)}
}

func (s *MemoryStore) Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	if _, ok := t.counts[postalCode]; !ok {
		t.order = append(t.order, postalCode)
	}
	t.counts[postalCode]++
	return t.counts[postalCode], nil
}

func (s *MemoryStore) Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tables[table]
	if t == nil {
		return []model.PostalCodeRecord{}, nil
	}
	records := make([]model.PostalCodeRecord, 0, len(t.order))
	for _, pc := range t.order {
		records = append(records, model.PostalCodeRecord{PostalCode: pc, VisitCount: t.counts[pc]})
	}
	return records, nil
}

// Put seeds a counter directly; fixtures only.
func (s *MemoryStore) Put(table string, record model.PostalCodeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	if _, ok := t.counts[record.PostalCode]; !ok {
		t.order = append(t.order, record.PostalCode)
	}
	t.counts[record.PostalCode] = record.VisitCount
}

// table must be called with mu held.
func (s *MemoryStore) table(name string) *memoryTable {
	t := s.tables[name]
	if t == nil {
		t = &memoryTable{counts: make(map[model.PostalCode]int64)}
		s.tables[name] = t
	}
	return t
}

func (s *MemoryStore) Close() error {
	return nil
}
