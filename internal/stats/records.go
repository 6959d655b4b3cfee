package stats

import (
	"sort"
	"study_tracker_backend/internal/model"
	"time"
)

// SessionStatus 取值
const (
	StatusToday     = "today"
	StatusTomorrow  = "tomorrow"
	StatusUpcoming  = "upcoming"
	StatusScheduled = "scheduled"
)

// SessionsOn 返回日期落在 day 这一天的计划
func (c Calendar) SessionsOn(sessions []model.StudySession, day time.Time) []model.StudySession {
	out := []model.StudySession{}
	for _, s := range sessions {
		if s.HasDate() && c.SameDay(s.SessionDate.Time, day) {
			out = append(out, s)
		}
	}
	return out
}

// EntriesOn 返回记录日期落在 day 这一天的错题
func (c Calendar) EntriesOn(entries []model.LogbookEntry, day time.Time) []model.LogbookEntry {
	out := []model.LogbookEntry{}
	for _, e := range entries {
		if e.HasDate() && c.SameDay(e.DateRecorded.Time, day) {
			out = append(out, e)
		}
	}
	return out
}

// SessionStatus 按日历日比较：today、tomorrow 或 upcoming；无日期为 scheduled
func (c Calendar) SessionStatus(s model.StudySession, now time.Time) string {
	if !s.HasDate() {
		return StatusScheduled
	}
	switch {
	case c.SameDay(s.SessionDate.Time, now):
		return StatusToday
	case c.IsTomorrow(s.SessionDate.Time, now):
		return StatusTomorrow
	}
	return StatusUpcoming
}

// DistinctSessionDays 至少有一个计划的不同日历日数量
func (c Calendar) DistinctSessionDays(sessions []model.StudySession) int {
	days := make(map[string]struct{})
	for _, s := range sessions {
		if s.HasDate() {
			days[s.SessionDate.In(c.Loc).Format("2006-01-02")] = struct{}{}
		}
	}
	return len(days)
}

// UpcomingSessions 日期不早于 now 的计划，按日期升序，最多 limit 条
func UpcomingSessions(sessions []model.StudySession, now time.Time, limit int) []model.StudySession {
	out := []model.StudySession{}
	for _, s := range sessions {
		if s.HasDate() && !s.SessionDate.Before(now) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SessionDate.Before(out[j].SessionDate.Time)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func recordedAt(e model.LogbookEntry) time.Time {
	if e.HasDate() {
		return e.DateRecorded.Time
	}
	return time.Unix(0, 0)
}

// SortByRecordedDesc 按记录日期降序，缺失日期按 1970-01-01 处理
func SortByRecordedDesc(entries []model.LogbookEntry) []model.LogbookEntry {
	out := make([]model.LogbookEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return recordedAt(out[i]).After(recordedAt(out[j]))
	})
	return out
}

// RecentMistakes 最近记录的 limit 条错题
func RecentMistakes(entries []model.LogbookEntry, limit int) []model.LogbookEntry {
	out := SortByRecordedDesc(entries)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func CountResolved(entries []model.LogbookEntry) int {
	n := 0
	for _, e := range entries {
		if e.IsResolved {
			n++
		}
	}
	return n
}

// SessionsSince 日期不早于 cutoff 的计划
func SessionsSince(sessions []model.StudySession, cutoff time.Time) []model.StudySession {
	out := []model.StudySession{}
	for _, s := range sessions {
		if s.HasDate() && !s.SessionDate.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// EntriesSince 记录日期不早于 cutoff 的错题
func EntriesSince(entries []model.LogbookEntry, cutoff time.Time) []model.LogbookEntry {
	out := []model.LogbookEntry{}
	for _, e := range entries {
		if e.HasDate() && !e.DateRecorded.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// SessionsBetween 日期落在 [from, to] 内的计划
func SessionsBetween(sessions []model.StudySession, from, to time.Time) []model.StudySession {
	out := []model.StudySession{}
	for _, s := range sessions {
		if s.HasDate() && !s.SessionDate.Before(from) && !s.SessionDate.After(to) {
			out = append(out, s)
		}
	}
	return out
}

// SessionsForSubject 按科目名称精确匹配
func SessionsForSubject(sessions []model.StudySession, subjectName string) []model.StudySession {
	out := []model.StudySession{}
	for _, s := range sessions {
		if s.SubjectName == subjectName {
			out = append(out, s)
		}
	}
	return out
}

// EntriesForSubject 按科目名称精确匹配
func EntriesForSubject(entries []model.LogbookEntry, subjectName string) []model.LogbookEntry {
	out := []model.LogbookEntry{}
	for _, e := range entries {
		if e.RelatedSubject == subjectName {
			out = append(out, e)
		}
	}
	return out
}

// PinnedFirst 稳定分区：置顶科目在前，其余保持原有相对顺序
func PinnedFirst(subjects []model.Subject, pinned map[string]bool) []model.Subject {
	out := make([]model.Subject, 0, len(subjects))
	for _, s := range subjects {
		if pinned[s.ID] {
			out = append(out, s)
		}
	}
	for _, s := range subjects {
		if !pinned[s.ID] {
			out = append(out, s)
		}
	}
	return out
}
