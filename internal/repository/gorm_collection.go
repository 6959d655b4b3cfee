package repository

import (
	"context"
	"errors"
	"fmt"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"

	"gorm.io/gorm"
)

// GormCollection 基于 gorm 的集合实现，更新按 ID 整条覆盖（后写覆盖先写）
type GormCollection[T any, PT recordPtr[T]] struct {
	DB *gorm.DB
}

func NewGormCollection[T any, PT recordPtr[T]](db *gorm.DB) *GormCollection[T, PT] {
	return &GormCollection[T, PT]{DB: db}
}

func NewSubjectRepository(db *gorm.DB) *GormCollection[model.Subject, *model.Subject] {
	return NewGormCollection[model.Subject](db)
}

func NewStudySessionRepository(db *gorm.DB) *GormCollection[model.StudySession, *model.StudySession] {
	return NewGormCollection[model.StudySession](db)
}

func NewLogbookEntryRepository(db *gorm.DB) *GormCollection[model.LogbookEntry, *model.LogbookEntry] {
	return NewGormCollection[model.LogbookEntry](db)
}

// NewGormCollections 创建全部集合
func NewGormCollections(db *gorm.DB) Collections {
	return Collections{
		Subjects:       NewSubjectRepository(db),
		StudySessions:  NewStudySessionRepository(db),
		LogbookEntries: NewLogbookEntryRepository(db),
	}
}

// GetAll 按创建顺序返回全部记录
func (r *GormCollection[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	err := r.DB.WithContext(ctx).Order("created_at").Find(&records).Error
	return records, err
}

func (r *GormCollection[T, PT]) Create(ctx context.Context, record *T) error {
	applyDefaults(record)
	return r.DB.WithContext(ctx).Create(record).Error
}

func (r *GormCollection[T, PT]) Update(ctx context.Context, record *T) error {
	id := PT(record).GetID()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", util.ErrRecordNotFound, id)
			}
			return err
		}
		if t, ok := any(record).(timestamped); ok {
			t.InheritCreated(any(&existing).(timestamped))
		}
		return tx.Save(record).Error
	})
}

// Delete 删除不存在的记录不报错
func (r *GormCollection[T, PT]) Delete(ctx context.Context, id string) error {
	var zero T
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error
}
