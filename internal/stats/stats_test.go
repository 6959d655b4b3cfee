package stats

import (
	"testing"
	"time"

	"study_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utc = NewCalendar(time.UTC, time.Sunday)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func session(name string, at time.Time) model.StudySession {
	return model.StudySession{UUIDBase: model.UUIDBase{ID: name}, SessionName: name, SessionDate: model.NewDate(at)}
}

func entry(id string, at time.Time, resolved bool) model.LogbookEntry {
	return model.LogbookEntry{UUIDBase: model.UUIDBase{ID: id}, DateRecorded: model.NewDate(at), IsResolved: resolved}
}

func names(sessions []model.StudySession) []string {
	out := []string{}
	for _, s := range sessions {
		out = append(out, s.SessionName)
	}
	return out
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 100, Percentage(4, 4))
	assert.Equal(t, 75, Percentage(3, 4))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
}

func TestMonthGridCoversMonthInWholeWeeks(t *testing.T) {
	// Oct 2026: Thu..Sat, Mar 2026: Sun..Tue, Apr 2026: Wed..Thu, Feb 2026: Sun..Sat
	months := []time.Time{day(2026, time.October, 18, 0), day(2026, time.March, 1, 0), day(2026, time.April, 10, 0), day(2026, time.February, 1, 0)}

	for _, cal := range []Calendar{utc, NewCalendar(time.UTC, time.Monday)} {
		for _, m := range months {
			grid := cal.MonthGrid(m)
			require.NotEmpty(t, grid)
			assert.Zero(t, len(grid)%7, "grid for %s has %d days", m.Month(), len(grid))
			assert.Equal(t, cal.WeekStart, grid[0].Weekday())
			assert.Equal(t, (cal.WeekStart+6)%7, grid[len(grid)-1].Weekday())

			first := cal.StartOfMonth(m)
			last := cal.StartOfDay(cal.EndOfMonth(m))
			assert.False(t, grid[0].After(first))
			assert.False(t, grid[len(grid)-1].Before(last))
			for d := first; !d.After(last); d = cal.AddDays(d, 1) {
				assert.Contains(t, grid, d)
			}
		}
	}
}

func TestMonthGridApril2026(t *testing.T) {
	// April 2026: Wed 1st to Thu 30th, Sunday weeks
	grid := utc.MonthGrid(day(2026, time.April, 15, 12))
	assert.Len(t, grid, 35)
	assert.Equal(t, day(2026, time.March, 29, 0), grid[0])
	assert.Equal(t, day(2026, time.May, 2, 0), grid[34])
}

func TestWeekBounds(t *testing.T) {
	now := day(2026, time.October, 18, 15) // Sunday

	assert.Equal(t, day(2026, time.October, 18, 0), utc.StartOfWeek(now))
	assert.Equal(t, time.Date(2026, time.October, 24, 23, 59, 59, 999999999, time.UTC), utc.EndOfWeek(now))

	monday := NewCalendar(time.UTC, time.Monday)
	assert.Equal(t, day(2026, time.October, 12, 0), monday.StartOfWeek(now))

	days := monday.WeekDays(now)
	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, day(2026, time.October, 18, 0), days[6])
}

func TestSameDayUsesCalendarZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	cal := NewCalendar(tokyo, time.Sunday)
	// 20:00 UTC on the 17th is already the 18th in Tokyo
	assert.True(t, cal.SameDay(day(2026, time.October, 17, 20), time.Date(2026, 10, 18, 9, 0, 0, 0, tokyo)))
	assert.False(t, utc.SameDay(day(2026, time.October, 17, 20), day(2026, time.October, 18, 9)))
}

func TestUpcomingSessions(t *testing.T) {
	now := day(2026, time.October, 18, 12)
	sessions := []model.StudySession{
		session("past", day(2026, time.October, 17, 9)),
		session("later-today", day(2026, time.October, 18, 18)),
		session("far", day(2026, time.December, 1, 9)),
		session("tomorrow", day(2026, time.October, 19, 9)),
		{SessionName: "undated"},
		session("next-week", day(2026, time.October, 25, 9)),
		session("exactly-now", now),
	}

	assert.Equal(t, []string{"exactly-now", "later-today", "tomorrow"}, names(UpcomingSessions(sessions, now, 3)))
	assert.Equal(t, []string{"exactly-now", "later-today", "tomorrow", "next-week", "far"}, names(UpcomingSessions(sessions, now, 5)))
	assert.Len(t, UpcomingSessions(sessions, now, 0), 5)
}

func TestSessionStatus(t *testing.T) {
	now := day(2026, time.October, 18, 12)
	assert.Equal(t, StatusToday, utc.SessionStatus(session("a", day(2026, time.October, 18, 23)), now))
	assert.Equal(t, StatusTomorrow, utc.SessionStatus(session("b", day(2026, time.October, 19, 0)), now))
	assert.Equal(t, StatusUpcoming, utc.SessionStatus(session("c", day(2026, time.October, 20, 0)), now))
	assert.Equal(t, StatusScheduled, utc.SessionStatus(model.StudySession{}, now))
}

func TestRecentMistakes(t *testing.T) {
	entries := []model.LogbookEntry{
		entry("old", day(2026, time.January, 1, 0), false),
		{UUIDBase: model.UUIDBase{ID: "undated"}},
		entry("newest", day(2026, time.October, 1, 0), true),
		entry("middle", day(2026, time.May, 1, 0), false),
	}

	recent := RecentMistakes(entries, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].ID)
	assert.Equal(t, "middle", recent[1].ID)
	assert.Equal(t, "old", recent[2].ID)

	all := SortByRecordedDesc(entries)
	assert.Equal(t, "undated", all[3].ID)
	assert.Equal(t, "old", entries[0].ID, "input is left untouched")

	assert.Equal(t, 1, CountResolved(entries))
}

func TestRangeFilters(t *testing.T) {
	cutoff := day(2026, time.October, 11, 12)
	sessions := []model.StudySession{
		session("before", day(2026, time.October, 11, 11)),
		session("at", cutoff),
		session("after", day(2026, time.October, 15, 0)),
		{SessionName: "undated"},
	}
	assert.Equal(t, []string{"at", "after"}, names(SessionsSince(sessions, cutoff)))
	assert.Equal(t, []string{"at"}, names(SessionsBetween(sessions, cutoff, day(2026, time.October, 14, 0))))

	entries := []model.LogbookEntry{entry("x", day(2026, time.October, 1, 0), false), entry("y", day(2026, time.October, 12, 0), false)}
	since := EntriesSince(entries, cutoff)
	require.Len(t, since, 1)
	assert.Equal(t, "y", since[0].ID)
}

func TestDayBuckets(t *testing.T) {
	target := day(2026, time.October, 18, 0)
	sessions := []model.StudySession{
		session("morning", day(2026, time.October, 18, 8)),
		session("evening", day(2026, time.October, 18, 22)),
		session("other", day(2026, time.October, 19, 8)),
	}
	assert.Equal(t, []string{"morning", "evening"}, names(utc.SessionsOn(sessions, target)))
	assert.Equal(t, 2, utc.DistinctSessionDays(sessions))

	entries := []model.LogbookEntry{entry("a", day(2026, time.October, 18, 5), false), entry("b", day(2026, time.October, 17, 5), false)}
	assert.Len(t, utc.EntriesOn(entries, target), 1)
}

func TestSubjectMatchingIsByName(t *testing.T) {
	sessions := []model.StudySession{{SubjectName: "Algebra"}, {SubjectName: "algebra"}, {SubjectName: "Algebra"}}
	assert.Len(t, SessionsForSubject(sessions, "Algebra"), 2)

	entries := []model.LogbookEntry{{RelatedSubject: "Physics"}, {RelatedSubject: "Algebra"}}
	assert.Len(t, EntriesForSubject(entries, "Physics"), 1)
}

func TestPinnedFirstIsStable(t *testing.T) {
	subjects := []model.Subject{
		{UUIDBase: model.UUIDBase{ID: "a"}},
		{UUIDBase: model.UUIDBase{ID: "b"}},
		{UUIDBase: model.UUIDBase{ID: "c"}},
		{UUIDBase: model.UUIDBase{ID: "d"}},
		{UUIDBase: model.UUIDBase{ID: "e"}},
	}
	out := PinnedFirst(subjects, map[string]bool{"d": true, "b": true})

	ids := []string{}
	for _, s := range out {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids)
}
