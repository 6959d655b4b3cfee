package service

import (
	"context"
	"fmt"
	"strings"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/stats"
	"study_tracker_backend/internal/util"
	"time"
)

const calendarUpcomingLimit = 5

type CalendarService struct {
	Collections repository.Collections
	Loader      *SnapshotLoader
	Calendar    stats.Calendar
	Now         Clock
}

func NewCalendarService(collections repository.Collections, cal stats.Calendar, now Clock) *CalendarService {
	return &CalendarService{
		Collections: collections,
		Loader:      NewSnapshotLoader(collections),
		Calendar:    cal,
		Now:         now,
	}
}

// CalendarDay 日历网格中的一天
type CalendarDay struct {
	Date     string               `json:"date"`
	Day      int                  `json:"day"`
	InMonth  bool                 `json:"inMonth"`
	IsToday  bool                 `json:"isToday"`
	Sessions []model.StudySession `json:"sessions"`
}

type CalendarStats struct {
	TotalSessions    int `json:"totalSessions"`
	SessionsThisWeek int `json:"sessionsThisWeek"`
	Deadlines        int `json:"deadlines"`
}

type CalendarView struct {
	Month     string               `json:"month"`
	Title     string               `json:"title"`
	PrevMonth string               `json:"prevMonth"`
	NextMonth string               `json:"nextMonth"`
	WeekDays  []string             `json:"weekDays"`
	Days      []CalendarDay        `json:"days"`
	Upcoming  []model.StudySession `json:"upcoming"`
	Stats     CalendarStats        `json:"stats"`
	Subjects  []model.Subject      `json:"subjects"`
}

// SessionForm 新建学习计划的表单
type SessionForm struct {
	SessionName string `json:"sessionName"`
	SessionDate string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	SubjectName string `json:"subjectName"`
	IsDeadline  bool   `json:"isDeadline"`
	Notes       string `json:"notes"`
}

// Complete 名称、日期、科目均为必填
func (f SessionForm) Complete() bool {
	return strings.TrimSpace(f.SessionName) != "" &&
		strings.TrimSpace(f.SessionDate) != "" &&
		strings.TrimSpace(f.SubjectName) != ""
}

// ParseMonth 解析 YYYY-MM，为空时取当前月份
func (s *CalendarService) ParseMonth(month string) (time.Time, error) {
	if month == "" {
		return s.Calendar.StartOfMonth(s.Now()), nil
	}
	t, err := time.ParseInLocation(util.MonthFormat, month, s.Calendar.Loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", util.ErrInvalidMonth, month)
	}
	return t, nil
}

func (s *CalendarService) View(ctx context.Context, month string) (*CalendarView, error) {
	m, err := s.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	snap := s.Loader.Load(ctx, LoadSubjects|LoadSessions)
	return BuildCalendarView(s.Calendar, snap, m, s.Now()), nil
}

// Form 点击日历中的某一天时预填日期
func (s *CalendarService) Form(date string) (*SessionForm, error) {
	if date == "" {
		return &SessionForm{SessionDate: s.Now().In(s.Calendar.Loc).Format(util.DateFormat)}, nil
	}
	d, err := model.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", util.ErrInvalidDate, date)
	}
	return &SessionForm{SessionDate: d.CalendarDate()}, nil
}

// CreateSession 必填字段缺失时不写入并返回 created=false；写入后重新读取日历
func (s *CalendarService) CreateSession(ctx context.Context, form SessionForm, month string) (bool, *CalendarView, error) {
	if !form.Complete() {
		view, err := s.View(ctx, month)
		return false, view, err
	}

	date, err := model.ParseDate(form.SessionDate)
	if err != nil {
		return false, nil, fmt.Errorf("%w: %q", util.ErrInvalidDate, form.SessionDate)
	}

	session := &model.StudySession{
		SessionName: form.SessionName,
		SessionDate: &date,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		SubjectName: form.SubjectName,
		IsDeadline:  form.IsDeadline,
		Notes:       form.Notes,
	}
	session.EnsureID()
	if err := s.Collections.StudySessions.Create(ctx, session); err != nil {
		return false, nil, fmt.Errorf("create study session: %w", err)
	}

	view, err := s.View(ctx, month)
	return true, view, err
}

// BuildCalendarView 只依赖快照和当前时间
func BuildCalendarView(cal stats.Calendar, snap Snapshot, month, now time.Time) *CalendarView {
	month = cal.StartOfMonth(month)

	view := &CalendarView{
		Month:     month.Format(util.MonthFormat),
		Title:     month.Format("January 2006"),
		PrevMonth: month.AddDate(0, -1, 0).Format(util.MonthFormat),
		NextMonth: month.AddDate(0, 1, 0).Format(util.MonthFormat),
		Upcoming:  stats.UpcomingSessions(snap.Sessions, now, calendarUpcomingLimit),
		Subjects:  snap.Subjects,
	}

	for _, d := range cal.WeekDays(month) {
		view.WeekDays = append(view.WeekDays, d.Format("Mon"))
	}

	for _, d := range cal.MonthGrid(month) {
		view.Days = append(view.Days, CalendarDay{
			Date:     d.Format(util.DateFormat),
			Day:      d.Day(),
			InMonth:  d.Month() == month.Month() && d.Year() == month.Year(),
			IsToday:  cal.SameDay(d, now),
			Sessions: cal.SessionsOn(snap.Sessions, d),
		})
	}

	view.Stats.TotalSessions = len(snap.Sessions)
	view.Stats.SessionsThisWeek = len(stats.SessionsBetween(snap.Sessions, cal.StartOfWeek(now), cal.EndOfWeek(now)))
	for _, sess := range snap.Sessions {
		if sess.IsDeadline {
			view.Stats.Deadlines++
		}
	}
	return view
}
