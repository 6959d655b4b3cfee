package service

import (
	"context"
	"fmt"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/stats"
	"study_tracker_backend/internal/util"
	"time"
)

// 时间范围
const (
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeQuarter = "quarter"
)

// NormalizeRange 未知范围按 month 处理
func NormalizeRange(r string) string {
	switch r {
	case RangeWeek, RangeQuarter:
		return r
	}
	return RangeMonth
}

// RangeCutoff 范围起点：一周前、一个月前或三个月前
func RangeCutoff(r string, now time.Time) time.Time {
	switch NormalizeRange(r) {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeQuarter:
		return now.AddDate(0, -3, 0)
	}
	return now.AddDate(0, -1, 0)
}

// RangeDays 一致性得分使用的名义天数
func RangeDays(r string) int {
	switch NormalizeRange(r) {
	case RangeWeek:
		return 7
	case RangeQuarter:
		return 90
	}
	return 30
}

type InsightsService struct {
	Loader   *SnapshotLoader
	Calendar stats.Calendar
	Now      Clock
}

func NewInsightsService(collections repository.Collections, cal stats.Calendar, now Clock) *InsightsService {
	return &InsightsService{
		Loader:   NewSnapshotLoader(collections),
		Calendar: cal,
		Now:      now,
	}
}

type SubjectPerformance struct {
	Name           string `json:"name"`
	Sessions       int    `json:"sessions"`
	Mistakes       int    `json:"mistakes"`
	Resolved       int    `json:"resolved"`
	ResolutionRate int    `json:"resolutionRate"`
	Difficulty     int    `json:"difficulty"`
}

type DayActivity struct {
	Day      string `json:"day"`
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Mistakes int    `json:"mistakes"`
}

type SeveritySlice struct {
	Level int    `json:"level"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type InsightsView struct {
	Range                string               `json:"range"`
	Since                string               `json:"since"`
	TotalSessions        int                  `json:"totalSessions"`
	TotalMistakes        int                  `json:"totalMistakes"`
	ResolvedMistakes     int                  `json:"resolvedMistakes"`
	ResolutionRate       int                  `json:"resolutionRate"`
	ConsistencyScore     int                  `json:"consistencyScore"`
	SubjectPerformance   []SubjectPerformance `json:"subjectPerformance"`
	WeeklyActivity       []DayActivity        `json:"weeklyActivity"`
	SeverityDistribution []SeveritySlice      `json:"severityDistribution"`
	TopPerformer         *SubjectPerformance  `json:"topPerformer"`
}

func (s *InsightsService) View(ctx context.Context, timeRange string) *InsightsView {
	snap := s.Loader.Load(ctx, LoadAll)
	return BuildInsightsView(s.Calendar, snap, timeRange, s.Now())
}

func BuildInsightsView(cal stats.Calendar, snap Snapshot, timeRange string, now time.Time) *InsightsView {
	timeRange = NormalizeRange(timeRange)
	cutoff := RangeCutoff(timeRange, now)
	sessions := stats.SessionsSince(snap.Sessions, cutoff)
	entries := stats.EntriesSince(snap.Entries, cutoff)

	view := &InsightsView{
		Range:         timeRange,
		Since:         cutoff.In(cal.Loc).Format(util.DateFormat),
		TotalSessions: len(sessions),
		TotalMistakes: len(entries),
	}
	view.ResolvedMistakes = stats.CountResolved(entries)
	view.ResolutionRate = stats.Percentage(view.ResolvedMistakes, view.TotalMistakes)
	view.SubjectPerformance = subjectPerformance(snap.Subjects, sessions, entries)
	view.TopPerformer = TopPerformer(view.SubjectPerformance)
	view.WeeklyActivity = weeklyActivity(cal, sessions, entries, now)
	view.SeverityDistribution = severityDistribution(entries)
	view.ConsistencyScore = ConsistencyScore(cal, sessions, timeRange)
	return view
}

// subjectPerformance 范围内既无计划也无错题的科目不列出
func subjectPerformance(subjects []model.Subject, sessions []model.StudySession, entries []model.LogbookEntry) []SubjectPerformance {
	out := []SubjectPerformance{}
	for _, sub := range subjects {
		mistakes := stats.EntriesForSubject(entries, sub.SubjectName)
		p := SubjectPerformance{
			Name:       sub.SubjectName,
			Sessions:   len(stats.SessionsForSubject(sessions, sub.SubjectName)),
			Mistakes:   len(mistakes),
			Resolved:   stats.CountResolved(mistakes),
			Difficulty: sub.Difficulty(),
		}
		if p.Name == "" {
			p.Name = "Unknown"
		}
		if p.Sessions == 0 && p.Mistakes == 0 {
			continue
		}
		p.ResolutionRate = stats.Percentage(p.Resolved, p.Mistakes)
		out = append(out, p)
	}
	return out
}

// TopPerformer 解决率最高者，并列时取第一个
func TopPerformer(perf []SubjectPerformance) *SubjectPerformance {
	if len(perf) == 0 {
		return nil
	}
	best := perf[0]
	for _, p := range perf[1:] {
		if p.ResolutionRate > best.ResolutionRate {
			best = p
		}
	}
	return &best
}

func weeklyActivity(cal stats.Calendar, sessions []model.StudySession, entries []model.LogbookEntry, now time.Time) []DayActivity {
	days := cal.WeekDays(now)
	out := make([]DayActivity, 0, len(days))
	for _, d := range days {
		out = append(out, DayActivity{
			Day:      d.Format("Mon"),
			Date:     d.Format(util.DateFormat),
			Sessions: len(cal.SessionsOn(sessions, d)),
			Mistakes: len(cal.EntriesOn(entries, d)),
		})
	}
	return out
}

// severityDistribution 只保留数量大于 0 的等级
func severityDistribution(entries []model.LogbookEntry) []SeveritySlice {
	out := []SeveritySlice{}
	for level := 1; level <= 5; level++ {
		count := 0
		for _, e := range entries {
			if e.SeverityLevel == level {
				count++
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, SeveritySlice{
			Level: level,
			Label: fmt.Sprintf("Level %d", level),
			Count: count,
			Color: model.SeverityChartColor(level),
		})
	}
	return out
}

// ConsistencyScore 有计划的不同日历日数 / 名义天数
func ConsistencyScore(cal stats.Calendar, sessions []model.StudySession, timeRange string) int {
	if len(sessions) == 0 {
		return 0
	}
	return stats.Percentage(cal.DistinctSessionDays(sessions), RangeDays(timeRange))
}
