package service

import (
	"context"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/tracing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Clock 便于测试注入固定时间
type Clock func() time.Time

// Part 指定一次视图加载需要读取的集合
type Part int

const (
	LoadSubjects Part = 1 << iota
	LoadSessions
	LoadEntries

	LoadAll = LoadSubjects | LoadSessions | LoadEntries
)

// Snapshot 一次视图加载读取到的全量数据，派生计算只依赖这份快照
type Snapshot struct {
	Subjects []model.Subject
	Sessions []model.StudySession
	Entries  []model.LogbookEntry
}

type SnapshotLoader struct {
	Collections repository.Collections
}

func NewSnapshotLoader(collections repository.Collections) *SnapshotLoader {
	return &SnapshotLoader{Collections: collections}
}

// Load 并发读取所需集合并等待全部完成。单个集合读取失败只记录日志，
// 该集合按空处理，不影响其他集合和视图的生成。
func (l *SnapshotLoader) Load(ctx context.Context, parts Part) Snapshot {
	ctx, span := tracing.Tracer.Start(ctx, "snapshot.load")
	defer span.End()

	snap := Snapshot{
		Subjects: []model.Subject{},
		Sessions: []model.StudySession{},
		Entries:  []model.LogbookEntry{},
	}

	var g errgroup.Group
	if parts&LoadSubjects != 0 {
		g.Go(func() error {
			if items, ok := fetch(ctx, repository.SubjectsCollection, l.Collections.Subjects); ok {
				snap.Subjects = items
			}
			return nil
		})
	}
	if parts&LoadSessions != 0 {
		g.Go(func() error {
			if items, ok := fetch(ctx, repository.StudySessionsCollection, l.Collections.StudySessions); ok {
				snap.Sessions = items
			}
			return nil
		})
	}
	if parts&LoadEntries != 0 {
		g.Go(func() error {
			if items, ok := fetch(ctx, repository.LogbookEntriesCollection, l.Collections.LogbookEntries); ok {
				snap.Entries = items
			}
			return nil
		})
	}
	g.Wait()

	return snap
}

func fetch[T any](ctx context.Context, name string, c repository.Collection[T]) ([]T, bool) {
	items, err := c.GetAll(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch collection", zap.String("collection", name), zap.Error(err))
		return nil, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}
