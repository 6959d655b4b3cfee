package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/stats"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// 科目列表的标签页
const (
	TabAll          = "all"
	TabPinned       = "pinned"
	TabActive       = "active"
	TabInactive     = "inactive"
	TabBeginner     = "beginner"
	TabIntermediate = "intermediate"
	TabAdvanced     = "advanced"
)

var subjectTabs = map[string]func(s model.Subject, pinned map[string]bool) bool{
	TabAll:          func(model.Subject, map[string]bool) bool { return true },
	TabPinned:       func(s model.Subject, pinned map[string]bool) bool { return pinned[s.ID] },
	TabActive:       func(s model.Subject, _ map[string]bool) bool { return s.IsActive },
	TabInactive:     func(s model.Subject, _ map[string]bool) bool { return !s.IsActive },
	TabBeginner:     func(s model.Subject, _ map[string]bool) bool { return s.Difficulty() <= 2 },
	TabIntermediate: func(s model.Subject, _ map[string]bool) bool { return s.Difficulty() == 3 },
	TabAdvanced:     func(s model.Subject, _ map[string]bool) bool { return s.Difficulty() >= 4 },
}

// NormalizeTab 未知标签页按 all 处理
func NormalizeTab(tab string) string {
	if _, ok := subjectTabs[tab]; ok {
		return tab
	}
	return TabAll
}

// FilterSubjects 按标签页过滤；除 pinned 外，置顶科目稳定地排在前面
func FilterSubjects(subjects []model.Subject, tab string, pinned map[string]bool) []model.Subject {
	tab = NormalizeTab(tab)
	match := subjectTabs[tab]

	out := []model.Subject{}
	for _, s := range subjects {
		if match(s, pinned) {
			out = append(out, s)
		}
	}
	if tab == TabPinned {
		return out
	}
	return stats.PinnedFirst(out, pinned)
}

type SubjectService struct {
	Collections repository.Collections
	Loader      *SnapshotLoader
	Pins        *PinService
	Storage     *StorageService
}

func NewSubjectService(collections repository.Collections, pins *PinService, storage *StorageService) *SubjectService {
	return &SubjectService{
		Collections: collections,
		Loader:      NewSnapshotLoader(collections),
		Pins:        pins,
		Storage:     storage,
	}
}

// SubjectStats 按科目名称匹配的计划和错题统计
type SubjectStats struct {
	TotalSessions    int `json:"totalSessions"`
	TotalMistakes    int `json:"totalMistakes"`
	ResolvedMistakes int `json:"resolvedMistakes"`
	ResolutionRate   int `json:"resolutionRate"`
}

func ComputeSubjectStats(snap Snapshot, subjectName string) SubjectStats {
	mistakes := stats.EntriesForSubject(snap.Entries, subjectName)
	resolved := stats.CountResolved(mistakes)
	return SubjectStats{
		TotalSessions:    len(stats.SessionsForSubject(snap.Sessions, subjectName)),
		TotalMistakes:    len(mistakes),
		ResolvedMistakes: resolved,
		ResolutionRate:   stats.Percentage(resolved, len(mistakes)),
	}
}

type SubjectItem struct {
	model.Subject
	Pinned          bool                  `json:"pinned"`
	DifficultyLabel string                `json:"difficultyLabel"`
	DifficultyColor string                `json:"difficultyColor"`
	Modules         []model.ContentModule `json:"modules"`
	Stats           SubjectStats          `json:"stats"`
}

type SubjectsQuickStats struct {
	TotalSubjects  int `json:"totalSubjects"`
	ActiveSubjects int `json:"activeSubjects"`
	StudySessions  int `json:"studySessions"`
}

type SubjectsView struct {
	Tab      string             `json:"tab"`
	Subjects []SubjectItem      `json:"subjects"`
	Pinned   []string           `json:"pinned"`
	Stats    SubjectsQuickStats `json:"stats"`
}

// SubjectForm 科目表单；IsActive 未提供时视为 true
type SubjectForm struct {
	SubjectName             string `json:"subjectName"`
	SubjectCode             string `json:"subjectCode"`
	Description             string `json:"description"`
	SubjectImage            string `json:"subjectImage"`
	StudyMaterialsLink      string `json:"studyMaterialsLink"`
	AdditionalResourcesLink string `json:"additionalResourcesLink"`
	IsActive                *bool  `json:"isActive"`
	DifficultyLevel         int    `json:"difficultyLevel"`
}

func (f SubjectForm) Complete() bool {
	return strings.TrimSpace(f.SubjectName) != ""
}

// apply 只覆盖表单字段，内容模块和进度字段保持不变
func (f SubjectForm) apply(s *model.Subject) {
	s.SubjectName = f.SubjectName
	s.SubjectCode = f.SubjectCode
	s.Description = f.Description
	s.SubjectImage = f.SubjectImage
	s.StudyMaterialsLink = f.StudyMaterialsLink
	s.AdditionalResourcesLink = f.AdditionalResourcesLink
	s.IsActive = f.IsActive == nil || *f.IsActive
	s.DifficultyLevel = f.DifficultyLevel
	if s.DifficultyLevel < 1 {
		s.DifficultyLevel = 1
	}
}

func (s *SubjectService) View(ctx context.Context, profileID, tab string) *SubjectsView {
	snap := s.Loader.Load(ctx, LoadAll)
	return BuildSubjectsView(snap, tab, s.Pins.Pinned(ctx, profileID))
}

func BuildSubjectsView(snap Snapshot, tab string, pinnedIDs []string) *SubjectsView {
	pinned := PinnedSet(pinnedIDs)

	view := &SubjectsView{
		Tab:      NormalizeTab(tab),
		Subjects: []SubjectItem{},
		Pinned:   pinnedIDs,
	}
	for _, sub := range FilterSubjects(snap.Subjects, tab, pinned) {
		view.Subjects = append(view.Subjects, SubjectItem{
			Subject:         sub,
			Pinned:          pinned[sub.ID],
			DifficultyLabel: model.DifficultyLabel(sub.Difficulty()),
			DifficultyColor: model.DifficultyColor(sub.Difficulty()),
			Modules:         sub.Modules(),
			Stats:           ComputeSubjectStats(snap, sub.SubjectName),
		})
	}

	view.Stats.TotalSubjects = len(snap.Subjects)
	for _, sub := range snap.Subjects {
		if sub.IsActive {
			view.Stats.ActiveSubjects++
		}
	}
	view.Stats.StudySessions = len(snap.Sessions)
	return view
}

// Save id 为空时新建（空模块列表、进度清零），否则更新表单字段。
// 科目名称为空时返回 saved=false
func (s *SubjectService) Save(ctx context.Context, profileID, id string, form SubjectForm, tab string) (bool, *SubjectsView, error) {
	if !form.Complete() {
		return false, s.View(ctx, profileID, tab), nil
	}

	if id == "" {
		subject := &model.Subject{}
		form.apply(subject)
		if err := subject.SetModules(nil); err != nil {
			return false, nil, err
		}
		subject.EnsureID()
		if err := s.Collections.Subjects.Create(ctx, subject); err != nil {
			return false, nil, fmt.Errorf("create subject: %w", err)
		}
	} else {
		subject, err := s.find(ctx, id)
		if err != nil {
			return false, nil, err
		}
		previous := subject.SubjectImage
		form.apply(subject)
		if err := s.Collections.Subjects.Update(ctx, subject); err != nil {
			return false, nil, fmt.Errorf("update subject: %w", err)
		}
		if previous != subject.SubjectImage {
			s.Storage.RemoveSubjectImage(ctx, previous)
		}
	}
	return true, s.View(ctx, profileID, tab), nil
}

// Delete 确认后删除科目并从置顶集合中移除
func (s *SubjectService) Delete(ctx context.Context, profileID, id string, confirmed bool, tab string) (*SubjectsView, error) {
	if !confirmed {
		return nil, util.ErrConfirmationRequired
	}
	var image string
	if subject, err := s.find(ctx, id); err == nil {
		image = subject.SubjectImage
	}
	if err := s.Collections.Subjects.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete subject: %w", err)
	}
	s.Storage.RemoveSubjectImage(ctx, image)
	if _, err := s.Pins.Remove(ctx, profileID, id); err != nil {
		logger.Log.Error("Failed to unpin deleted subject", zap.String("subject", id), zap.Error(err))
	}
	return s.View(ctx, profileID, tab), nil
}

func (s *SubjectService) TogglePin(ctx context.Context, profileID, id, tab string) (*SubjectsView, error) {
	if _, err := s.Pins.Toggle(ctx, profileID, id); err != nil {
		return nil, err
	}
	return s.View(ctx, profileID, tab), nil
}

// ModulesView 内容模块编辑器的初始数据
type ModulesView struct {
	SubjectID string                `json:"subjectId"`
	Modules   []model.ContentModule `json:"modules"`
	Progress  model.Progress        `json:"progress"`
}

func (s *SubjectService) Modules(ctx context.Context, id string) (*ModulesView, error) {
	subject, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	editor := NewModuleEditor(subject.Modules())
	return &ModulesView{SubjectID: id, Modules: editor.Modules(), Progress: editor.Progress()}, nil
}

// CommitModules 依次应用编辑操作，整体序列化写回并重新计算进度
func (s *SubjectService) CommitModules(ctx context.Context, profileID, id string, ops []ModuleOp, tab string) (*SubjectsView, error) {
	subject, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	editor := NewModuleEditor(subject.Modules())
	for _, op := range ops {
		if err := editor.Apply(op); err != nil {
			return nil, err
		}
	}
	if err := subject.SetModules(editor.Modules()); err != nil {
		return nil, err
	}
	if err := s.Collections.Subjects.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("update subject modules: %w", err)
	}
	return s.View(ctx, profileID, tab), nil
}

func (s *SubjectService) Stats(ctx context.Context, id string) (*SubjectStats, error) {
	snap := s.Loader.Load(ctx, LoadAll)
	for _, sub := range snap.Subjects {
		if sub.ID == id {
			st := ComputeSubjectStats(snap, sub.SubjectName)
			return &st, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", util.ErrRecordNotFound, id)
}

// UploadImage 上传图片并把 URL 写入 subjectImage，随后删除旧图片
func (s *SubjectService) UploadImage(ctx context.Context, id, filename string, reader io.Reader, size int64, contentType string) (*model.Subject, error) {
	subject, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.Storage.UploadSubjectImage(ctx, id, filename, reader, size, contentType)
	if err != nil {
		return nil, err
	}
	previous := subject.SubjectImage
	subject.SubjectImage = url
	if err := s.Collections.Subjects.Update(ctx, subject); err != nil {
		s.Storage.RemoveSubjectImage(ctx, url)
		return nil, fmt.Errorf("update subject image: %w", err)
	}
	if previous != url {
		s.Storage.RemoveSubjectImage(ctx, previous)
	}
	return subject, nil
}

func (s *SubjectService) find(ctx context.Context, id string) (*model.Subject, error) {
	subjects, err := s.Collections.Subjects.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch subjects: %w", err)
	}
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", util.ErrRecordNotFound, id)
}
