package service

import (
	"context"
	"fmt"
	"strings"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/stats"
	"study_tracker_backend/internal/util"
)

// 过滤条件取值
const (
	FilterAll      = "all"
	StatusResolved = "resolved"
	StatusPending  = "pending"
)

type LogbookService struct {
	Collections repository.Collections
	Loader      *SnapshotLoader
	Calendar    stats.Calendar
	Now         Clock
}

func NewLogbookService(collections repository.Collections, cal stats.Calendar, now Clock) *LogbookService {
	return &LogbookService{
		Collections: collections,
		Loader:      NewSnapshotLoader(collections),
		Calendar:    cal,
		Now:         now,
	}
}

// LogbookFilter 三个条件按 AND 组合
type LogbookFilter struct {
	Search  string `form:"search" json:"search"`
	Subject string `form:"subject" json:"subject"`
	Status  string `form:"status" json:"status"`
}

// Normalize 空值及未知状态视为 all
func (f LogbookFilter) Normalize() LogbookFilter {
	if f.Subject == "" {
		f.Subject = FilterAll
	}
	switch f.Status {
	case StatusResolved, StatusPending:
	default:
		f.Status = FilterAll
	}
	return f
}

func (f LogbookFilter) Match(e model.LogbookEntry) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.MistakeDescription), term) &&
			!strings.Contains(strings.ToLower(e.RelatedSubject), term) &&
			!strings.Contains(strings.ToLower(e.CorrectionAction), term) {
			return false
		}
	}
	if f.Subject != "" && f.Subject != FilterAll && e.RelatedSubject != f.Subject {
		return false
	}
	switch f.Status {
	case StatusResolved:
		return e.IsResolved
	case StatusPending:
		return !e.IsResolved
	}
	return true
}

// FilterEntries 过滤后按记录日期降序
func FilterEntries(entries []model.LogbookEntry, f LogbookFilter) []model.LogbookEntry {
	f = f.Normalize()
	out := []model.LogbookEntry{}
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return stats.SortByRecordedDesc(out)
}

type LogbookStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Resolved       int `json:"resolved"`
	ResolutionRate int `json:"resolutionRate"`
}

type LogbookView struct {
	Filter   LogbookFilter   `json:"filter"`
	Entries  []MistakeItem   `json:"entries"`
	Subjects []model.Subject `json:"subjects"`
	Stats    LogbookStats    `json:"stats"`
}

// EntryForm 新建或编辑错题的表单
type EntryForm struct {
	MistakeDescription string `json:"mistakeDescription"`
	DateRecorded       string `json:"dateRecorded"`
	RelatedSubject     string `json:"relatedSubject"`
	SeverityLevel      int    `json:"severityLevel"`
	CorrectionAction   string `json:"correctionAction"`
	IsResolved         bool   `json:"isResolved"`
}

// Complete 描述和关联科目为必填
func (f EntryForm) Complete() bool {
	return strings.TrimSpace(f.MistakeDescription) != "" && strings.TrimSpace(f.RelatedSubject) != ""
}

// NewEntryForm 新建表单默认日期为今天、严重程度为 1
func (s *LogbookService) NewEntryForm() EntryForm {
	return EntryForm{
		DateRecorded:  s.today(),
		SeverityLevel: 1,
	}
}

func (s *LogbookService) today() string {
	return s.Now().In(s.Calendar.Loc).Format(util.DateFormat)
}

func (s *LogbookService) View(ctx context.Context, filter LogbookFilter) *LogbookView {
	snap := s.Loader.Load(ctx, LoadSubjects|LoadEntries)
	return BuildLogbookView(snap, filter)
}

func BuildLogbookView(snap Snapshot, filter LogbookFilter) *LogbookView {
	filter = filter.Normalize()
	view := &LogbookView{
		Filter:   filter,
		Entries:  []MistakeItem{},
		Subjects: snap.Subjects,
	}
	for _, e := range FilterEntries(snap.Entries, filter) {
		view.Entries = append(view.Entries, NewMistakeItem(e))
	}

	view.Stats.Total = len(snap.Entries)
	view.Stats.Resolved = stats.CountResolved(snap.Entries)
	view.Stats.Pending = view.Stats.Total - view.Stats.Resolved
	view.Stats.ResolutionRate = stats.Percentage(view.Stats.Resolved, view.Stats.Total)
	return view
}

// Form 编辑表单，日期统一为 YYYY-MM-DD，缺失时取今天
func (s *LogbookService) Form(ctx context.Context, id string) (*EntryForm, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	form := EntryForm{
		MistakeDescription: entry.MistakeDescription,
		DateRecorded:       s.today(),
		RelatedSubject:     entry.RelatedSubject,
		SeverityLevel:      entry.SeverityLevel,
		CorrectionAction:   entry.CorrectionAction,
		IsResolved:         entry.IsResolved,
	}
	if entry.HasDate() {
		form.DateRecorded = entry.DateRecorded.CalendarDate()
	}
	if form.SeverityLevel == 0 {
		form.SeverityLevel = 1
	}
	return &form, nil
}

// Save id 为空时新建，否则整条覆盖更新。必填字段缺失时返回 saved=false
func (s *LogbookService) Save(ctx context.Context, id string, form EntryForm, filter LogbookFilter) (bool, *LogbookView, error) {
	if !form.Complete() {
		return false, s.View(ctx, filter), nil
	}

	entry, err := s.entryFromForm(form)
	if err != nil {
		return false, nil, err
	}

	if id == "" {
		entry.EnsureID()
		if err := s.Collections.LogbookEntries.Create(ctx, entry); err != nil {
			return false, nil, fmt.Errorf("create logbook entry: %w", err)
		}
	} else {
		entry.ID = id
		if err := s.Collections.LogbookEntries.Update(ctx, entry); err != nil {
			return false, nil, fmt.Errorf("update logbook entry: %w", err)
		}
	}
	return true, s.View(ctx, filter), nil
}

func (s *LogbookService) entryFromForm(form EntryForm) (*model.LogbookEntry, error) {
	dateStr := form.DateRecorded
	if dateStr == "" {
		dateStr = s.today()
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", util.ErrInvalidDate, dateStr)
	}
	severity := form.SeverityLevel
	if severity == 0 {
		severity = 1
	}
	return &model.LogbookEntry{
		MistakeDescription: form.MistakeDescription,
		DateRecorded:       &date,
		RelatedSubject:     form.RelatedSubject,
		SeverityLevel:      severity,
		CorrectionAction:   form.CorrectionAction,
		IsResolved:         form.IsResolved,
	}, nil
}

// ToggleResolved 只翻转 isResolved，其余字段原样写回
func (s *LogbookService) ToggleResolved(ctx context.Context, id string, filter LogbookFilter) (*LogbookView, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.IsResolved = !entry.IsResolved
	if err := s.Collections.LogbookEntries.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("toggle logbook entry: %w", err)
	}
	return s.View(ctx, filter), nil
}

// Delete 未确认时不做任何删除
func (s *LogbookService) Delete(ctx context.Context, id string, confirmed bool, filter LogbookFilter) (*LogbookView, error) {
	if !confirmed {
		return nil, util.ErrConfirmationRequired
	}
	if err := s.Collections.LogbookEntries.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete logbook entry: %w", err)
	}
	return s.View(ctx, filter), nil
}

func (s *LogbookService) find(ctx context.Context, id string) (*model.LogbookEntry, error) {
	entries, err := s.Collections.LogbookEntries.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch logbook entries: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", util.ErrRecordNotFound, id)
}
