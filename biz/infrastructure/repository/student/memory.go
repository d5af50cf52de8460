package student

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
	data map[primitive.ObjectID]Student
}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{data: make(map[primitive.ObjectID]Student)}
}

func (m *MemoryMapper) Insert(_ context.Context, s *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	m.data[s.ID] = *s
	return nil
}

func (m *MemoryMapper) Update(_ context.Context, s *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[s.ID]; !ok {
		return consts.ErrNotFound
	}
	s.UpdateTime = time.Now()
	m.data[s.ID] = *s
	return nil
}

func (m *MemoryMapper) FindOne(_ context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[oid]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MemoryMapper) filter(keep func(s *Student) bool) []*Student {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]*Student, 0, len(m.data))
	for _, s := range m.data {
		s := s
		if keep(&s) {
			res = append(res, &s)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreateTime.After(res[j].CreateTime)
	})
	return res
}

func (m *MemoryMapper) FindAll(_ context.Context) ([]*Student, error) {
	return m.filter(func(*Student) bool { return true }), nil
}

func (m *MemoryMapper) FindByOwner(_ context.Context, ownerID string) ([]*Student, error) {
	return m.filter(func(s *Student) bool { return s.OwnerID == ownerID }), nil
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
	m.data = make(map[primitive.ObjectID]Student)
	return n, nil
}
