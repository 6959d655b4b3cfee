package service

import (
	"fmt"
	"strings"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"
)

// 内容模块批量编辑的操作类型
const (
	ModuleOpAdd    = "add"
	ModuleOpToggle = "toggle"
	ModuleOpDelete = "delete"
)

// ModuleOp 一次内容模块编辑
type ModuleOp struct {
	Op          string `json:"op" binding:"required,oneof=add toggle delete"`
	ModuleID    string `json:"moduleId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ModuleEditor 在内存中编辑内容模块列表，只有提交时才写回科目
type ModuleEditor struct {
	modules []model.ContentModule
}

func NewModuleEditor(modules []model.ContentModule) *ModuleEditor {
	copied := make([]model.ContentModule, len(modules))
	copy(copied, modules)
	return &ModuleEditor{modules: copied}
}

// Add 标题为空时忽略；order 为当前数量加一，初始未完成
func (e *ModuleEditor) Add(title, description string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	e.modules = append(e.modules, model.ContentModule{
		ID:          model.GenerateUUID(),
		Title:       title,
		Description: description,
		Completed:   false,
		Order:       len(e.modules) + 1,
	})
	return true
}

func (e *ModuleEditor) Toggle(id string) {
	for i := range e.modules {
		if e.modules[i].ID == id {
			e.modules[i].Completed = !e.modules[i].Completed
		}
	}
}

func (e *ModuleEditor) Delete(id string) {
	kept := e.modules[:0]
	for _, m := range e.modules {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	e.modules = kept
}

func (e *ModuleEditor) Apply(op ModuleOp) error {
	switch op.Op {
	case ModuleOpAdd:
		e.Add(op.Title, op.Description)
	case ModuleOpToggle:
		e.Toggle(op.ModuleID)
	case ModuleOpDelete:
		e.Delete(op.ModuleID)
	default:
		return fmt.Errorf("%w: %q", util.ErrInvalidModuleOp, op.Op)
	}
	return nil
}

func (e *ModuleEditor) Modules() []model.ContentModule {
	out := make([]model.ContentModule, len(e.modules))
	copy(out, e.modules)
	return out
}

func (e *ModuleEditor) Progress() model.Progress {
	return model.ComputeProgress(e.modules)
}
