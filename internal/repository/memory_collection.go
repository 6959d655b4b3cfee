package repository

import (
	"context"
	"fmt"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"
	"sync"
	"time"
)

// MemoryCollection 进程内集合，用于 database.driver=memory 及测试
type MemoryCollection[T any, PT recordPtr[T]] struct {
	mu      sync.RWMutex
	records []T
}

func NewMemoryCollection[T any, PT recordPtr[T]]() *MemoryCollection[T, PT] {
	return &MemoryCollection[T, PT]{}
}

// NewMemoryCollections 创建全部内存集合
func NewMemoryCollections() Collections {
	return Collections{
		Subjects:       NewMemoryCollection[model.Subject](),
		StudySessions:  NewMemoryCollection[model.StudySession](),
		LogbookEntries: NewMemoryCollection[model.LogbookEntry](),
	}
}

func (m *MemoryCollection[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryCollection[T, PT]) Create(ctx context.Context, record *T) error {
	p := PT(record)
	if p.GetID() == "" {
		p.SetID(model.GenerateUUID())
	}
	applyDefaults(record)
	stamp(record)

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if PT(&m.records[i]).GetID() == p.GetID() {
			return fmt.Errorf("duplicate id %s", p.GetID())
		}
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MemoryCollection[T, PT]) Update(ctx context.Context, record *T) error {
	id := PT(record).GetID()

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if PT(&m.records[i]).GetID() == id {
			if t, ok := any(record).(timestamped); ok {
				t.InheritCreated(any(&m.records[i]).(timestamped))
			}
			stamp(record)
			m.records[i] = *record
			return nil
		}
	}
	return fmt.Errorf("%w: %s", util.ErrRecordNotFound, id)
}

func (m *MemoryCollection[T, PT]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if PT(&m.records[i]).GetID() == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// defaulted 写入前补齐列默认值的记录
type defaulted interface {
	ApplyDefaults()
}

func applyDefaults(record any) {
	if d, ok := record.(defaulted); ok {
		d.ApplyDefaults()
	}
}

type timestamped interface {
	Touch(now time.Time)
	InheritCreated(from interface{ CreatedTime() time.Time })
	CreatedTime() time.Time
}

func stamp(record any) {
	if t, ok := record.(timestamped); ok {
		t.Touch(time.Now())
	}
}
