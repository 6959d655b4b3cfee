package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
)

// rawCollection 以 JSON 读写某个集合，供按名称访问的通用接口使用
type rawCollection interface {
	List(ctx context.Context) (any, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, body []byte) (any, error)
	Update(ctx context.Context, id string, body []byte) (any, error)
	Delete(ctx context.Context, id string) error
}

type typedCollection[T any, PT interface {
	*T
	model.Record
}] struct {
	c repository.Collection[T]
	// normalize 在写入前修正派生字段
	normalize func(*T)
}

func (t typedCollection[T, PT]) List(ctx context.Context) (any, error) {
	return t.c.GetAll(ctx)
}

func (t typedCollection[T, PT]) Count(ctx context.Context) (int, error) {
	records, err := t.c.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (t typedCollection[T, PT]) decode(body []byte) (*T, error) {
	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidPayload, err)
	}
	if t.normalize != nil {
		t.normalize(&record)
	}
	return &record, nil
}

func (t typedCollection[T, PT]) Create(ctx context.Context, body []byte) (any, error) {
	record, err := t.decode(body)
	if err != nil {
		return nil, err
	}
	if id := PT(record).GetID(); id == "" {
		PT(record).SetID(model.GenerateUUID())
	} else if !validRecordID(id) {
		return nil, fmt.Errorf("%w: invalid id %q", util.ErrInvalidPayload, id)
	}
	if err := t.c.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (t typedCollection[T, PT]) Update(ctx context.Context, id string, body []byte) (any, error) {
	record, err := t.decode(body)
	if err != nil {
		return nil, err
	}
	PT(record).SetID(id)
	if err := t.c.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (t typedCollection[T, PT]) Delete(ctx context.Context, id string) error {
	return t.c.Delete(ctx, id)
}

// validRecordID 调用方提供的 ID 会用作存储路径的一段，不能包含路径分隔符或 ..
func validRecordID(id string) bool {
	return !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}

// normalizeSubject 进度字段始终由内容模块推导
func normalizeSubject(s *model.Subject) {
	_ = s.SetModules(s.Modules())
}

func normalizeEntry(e *model.LogbookEntry) {
	e.ApplyDefaults()
}

// CollectionService 按集合名称提供全量读取、创建、更新、删除
type CollectionService struct {
	collections map[string]rawCollection
}

func NewCollectionService(collections repository.Collections) *CollectionService {
	return &CollectionService{
		collections: map[string]rawCollection{
			repository.SubjectsCollection: typedCollection[model.Subject, *model.Subject]{
				c: collections.Subjects, normalize: normalizeSubject,
			},
			repository.StudySessionsCollection: typedCollection[model.StudySession, *model.StudySession]{
				c: collections.StudySessions,
			},
			repository.LogbookEntriesCollection: typedCollection[model.LogbookEntry, *model.LogbookEntry]{
				c: collections.LogbookEntries, normalize: normalizeEntry,
			},
		},
	}
}

func (s *CollectionService) lookup(name string) (rawCollection, error) {
	c, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrUnknownCollection, name)
	}
	return c, nil
}

func (s *CollectionService) GetAll(ctx context.Context, name string) (any, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return c.List(ctx)
}

func (s *CollectionService) Count(ctx context.Context, name string) (int, error) {
	c, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return c.Count(ctx)
}

func (s *CollectionService) Create(ctx context.Context, name string, body []byte) (any, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Create(ctx, body)
}

func (s *CollectionService) Update(ctx context.Context, name, id string, body []byte) (any, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Update(ctx, id, body)
}

// Delete 未确认时不删除
func (s *CollectionService) Delete(ctx context.Context, name, id string, confirmed bool) error {
	c, err := s.lookup(name)
	if err != nil {
		return err
	}
	if !confirmed {
		return util.ErrConfirmationRequired
	}
	return c.Delete(ctx, id)
}
