package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record 集合中的记录，以不透明的字符串 ID 作为主键
type Record interface {
	GetID() string
	SetID(id string)
}

// swagger:model
type UUIDBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	CreatedAt time.Time `json:"_createdDate"`
	UpdatedAt time.Time `json:"_updatedDate"`
}

func (b *UUIDBase) GetID() string {
	return b.ID
}

func (b *UUIDBase) SetID(id string) {
	b.ID = id
}

// EnsureID 调用方未提供 ID 时生成一个
func (b *UUIDBase) EnsureID() {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	b.EnsureID()
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}

// Touch 刷新更新时间，首次写入时同时设置创建时间
func (b *UUIDBase) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (b *UUIDBase) CreatedTime() time.Time {
	return b.CreatedAt
}

// InheritCreated 整条覆盖更新时保留原记录的创建时间
func (b *UUIDBase) InheritCreated(from interface{ CreatedTime() time.Time }) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = from.CreatedTime()
	}
}
