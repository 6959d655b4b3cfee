package service

import (
	"context"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/stats"
	"time"
)

const (
	dashboardUpcomingLimit = 3
	recentMistakesLimit    = 3
)

type DashboardService struct {
	Loader   *SnapshotLoader
	Calendar stats.Calendar
	Now      Clock
}

func NewDashboardService(collections repository.Collections, cal stats.Calendar, now Clock) *DashboardService {
	return &DashboardService{
		Loader:   NewSnapshotLoader(collections),
		Calendar: cal,
		Now:      now,
	}
}

// UpcomingSession 带状态标记的近期计划
type UpcomingSession struct {
	model.StudySession
	Status string `json:"status"`
}

// MistakeItem 附带严重程度标签和颜色的错题
type MistakeItem struct {
	model.LogbookEntry
	SeverityLabel string `json:"severityLabel"`
	SeverityColor string `json:"severityColor"`
}

func NewMistakeItem(e model.LogbookEntry) MistakeItem {
	return MistakeItem{
		LogbookEntry:  e,
		SeverityLabel: model.SeverityLabel(e.SeverityLevel),
		SeverityColor: model.SeverityColor(e.SeverityLevel),
	}
}

type DashboardMetrics struct {
	TotalSessions    int `json:"totalSessions"`
	ActiveSubjects   int `json:"activeSubjects"`
	TotalMistakes    int `json:"totalMistakes"`
	ResolvedMistakes int `json:"resolvedMistakes"`
	PendingMistakes  int `json:"pendingMistakes"`
	ResolutionRate   int `json:"resolutionRate"`
	TodaySessions    int `json:"todaySessions"`
}

type DashboardView struct {
	Upcoming       []UpcomingSession `json:"upcoming"`
	RecentMistakes []MistakeItem     `json:"recentMistakes"`
	Metrics        DashboardMetrics  `json:"metrics"`
}

func (s *DashboardService) View(ctx context.Context) *DashboardView {
	snap := s.Loader.Load(ctx, LoadAll)
	return BuildDashboardView(s.Calendar, snap, s.Now())
}

func BuildDashboardView(cal stats.Calendar, snap Snapshot, now time.Time) *DashboardView {
	view := &DashboardView{
		Upcoming:       []UpcomingSession{},
		RecentMistakes: []MistakeItem{},
	}

	for _, sess := range stats.UpcomingSessions(snap.Sessions, now, dashboardUpcomingLimit) {
		status := cal.SessionStatus(sess, now)
		if status == stats.StatusToday {
			view.Metrics.TodaySessions++
		}
		view.Upcoming = append(view.Upcoming, UpcomingSession{StudySession: sess, Status: status})
	}
	for _, e := range stats.RecentMistakes(snap.Entries, recentMistakesLimit) {
		view.RecentMistakes = append(view.RecentMistakes, NewMistakeItem(e))
	}

	m := &view.Metrics
	m.TotalSessions = len(snap.Sessions)
	for _, sub := range snap.Subjects {
		if sub.IsActive {
			m.ActiveSubjects++
		}
	}
	m.TotalMistakes = len(snap.Entries)
	m.ResolvedMistakes = stats.CountResolved(snap.Entries)
	m.PendingMistakes = m.TotalMistakes - m.ResolvedMistakes
	m.ResolutionRate = stats.Percentage(m.ResolvedMistakes, m.TotalMistakes)
	return view
}
