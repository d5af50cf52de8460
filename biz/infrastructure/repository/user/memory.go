package user

import (
	"context"
	"listening-show/biz/infrastructure/consts"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryMapper struct {
	mu   sync.RWMutex
	data map[primitive.ObjectID]User
}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{data: make(map[primitive.ObjectID]User)}
}

func (m *MemoryMapper) Insert(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.data {
		if e.Email == u.Email {
			return consts.ErrRepeatedSignUp
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	m.data[u.ID] = *u
	return nil
}

func (m *MemoryMapper) FindOne(_ context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.data[oid]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

func (m *MemoryMapper) FindOneByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.data {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *MemoryMapper) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.data))
	m.data = make(map[primitive.ObjectID]User)
	return n, nil
}
