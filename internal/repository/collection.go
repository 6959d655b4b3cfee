package repository

import (
	"context"
	"study_tracker_backend/internal/model"
)

// 集合名称，与前端及种子数据使用的名称一致
const (
	SubjectsCollection       = "subjects"
	StudySessionsCollection  = "studysessions"
	LogbookEntriesCollection = "logbookentries"
)

// Collection 按集合名访问的通用 CRUD 接口：全量读取、创建、按 ID 更新、按 ID 删除。
// 不支持分页和服务端过滤，所有过滤排序都在读取全量数据之后完成。
type Collection[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id string) error
}

// recordPtr 约束 *T 实现 model.Record
type recordPtr[T any] interface {
	*T
	model.Record
}

// Collections 三个业务集合
type Collections struct {
	Subjects       Collection[model.Subject]
	StudySessions  Collection[model.StudySession]
	LogbookEntries Collection[model.LogbookEntry]
}

// Names 返回所有集合名称
func Names() []string {
	return []string{SubjectsCollection, StudySessionsCollection, LogbookEntriesCollection}
}
