package listening

import (
	"context"
	"listening-show/biz/infrastructure/consts"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryMapper 内存实现, 与 MongoMapper 一样保证 (student, weekStart) 唯一并校验版本
type MemoryMapper struct {
	mu   sync.RWMutex
	data map[primitive.ObjectID]*Listening
}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{data: make(map[primitive.ObjectID]*Listening)}
}

func clone(l *Listening) *Listening {
	c := *l
	c.Rows = append(make([]Entry, 0, len(l.Rows)), l.Rows...)
	return &c
}

func (m *MemoryMapper) find(studentID string, weekStart time.Time) *Listening {
	for _, l := range m.data {
		if l.StudentID == studentID && l.WeekStart.Equal(weekStart) {
			return l
		}
	}
	return nil
}

func (m *MemoryMapper) FindByStudentAndWeek(_ context.Context, studentID string, weekStart time.Time) (*Listening, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l := m.find(studentID, weekStart)
	if l == nil {
		return nil, consts.ErrNotFound
	}
	return clone(l), nil
}

func (m *MemoryMapper) Create(_ context.Context, studentID string, weekStart, weekEnd time.Time, createdBy string) (*Listening, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.find(studentID, weekStart) != nil {
		return nil, consts.ErrConflict
	}
	now := time.Now()
	l := &Listening{
		ID:         primitive.NewObjectID(),
		StudentID:  studentID,
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		Rows:       []Entry{},
		CreatedBy:  createdBy,
		CreateTime: now,
		UpdateTime: now,
	}
	m.data[l.ID] = l
	return clone(l), nil
}

func (m *MemoryMapper) Save(_ context.Context, l *Listening) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.data[l.ID]
	if !ok || cur.Version != l.Version {
		return consts.ErrConflict
	}
	l.Version++
	l.UpdateTime = time.Now()
	m.data[l.ID] = clone(l)
	return nil
}

func (m *MemoryMapper) FindByStudent(_ context.Context, studentID string) ([]*Listening, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]*Listening, 0)
	for _, l := range m.data {
		if l.StudentID == studentID {
			res = append(res, clone(l))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].WeekStart.After(res[j].WeekStart)
	})
	return res, nil
}

func (m *MemoryMapper) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.data))
	m.data = make(map[primitive.ObjectID]*Listening)
	return n, nil
}
