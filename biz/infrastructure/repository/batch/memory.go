package batch

import (
	"context"
	"listening-show/biz/infrastructure/consts"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryMapper struct {
	mu   sync.RWMutex
	data map[primitive.ObjectID]Batch
}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{data: make(map[primitive.ObjectID]Batch)}
}

func (m *MemoryMapper) Insert(_ context.Context, b *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
		b.CreateTime = time.Now()
		b.UpdateTime = b.CreateTime
	}
	if b.Students == nil {
		b.Students = []string{}
	}
	m.data[b.ID] = *b
	return nil
}

func (m *MemoryMapper) Update(_ context.Context, b *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[b.ID]; !ok {
		return consts.ErrNotFound
	}
	b.UpdateTime = time.Now()
	m.data[b.ID] = *b
	return nil
}

func (m *MemoryMapper) FindOne(_ context.Context, id string) (*Batch, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[oid]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &b, nil
}

func (m *MemoryMapper) FindAll(_ context.Context) ([]*Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]*Batch, 0, len(m.data))
	for _, b := range m.data {
		b := b
		res = append(res, &b)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreateTime.After(res[j].CreateTime)
	})
	return res, nil
}

func (m *MemoryMapper) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[oid]; !ok {
		return consts.ErrNotFound
	}
	delete(m.data, oid)
	return nil
}

func (m *MemoryMapper) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.data))
	m.data = make(map[primitive.ObjectID]Batch)
	return n, nil
}
