package stats

import "time"

// Calendar 按时区和一周起始日进行日历计算
type Calendar struct {
	Loc       *time.Location
	WeekStart time.Weekday
}

func NewCalendar(loc *time.Location, weekStart time.Weekday) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Loc: loc, WeekStart: weekStart}
}

func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Loc)
}

// SameDay 忽略时间部分比较日历日
func (c Calendar) SameDay(a, b time.Time) bool {
	a, b = a.In(c.Loc), b.In(c.Loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// AddDays 按日历日偏移，跨夏令时也保持零点
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	t = t.In(c.Loc)
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.Loc)
}

func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	offset := (int(day.Weekday()) - int(c.WeekStart) + 7) % 7
	return c.AddDays(day, -offset)
}

// EndOfWeek 返回本周最后一天的最后一刻
func (c Calendar) EndOfWeek(t time.Time) time.Time {
	return c.AddDays(c.StartOfWeek(t), 7).Add(-time.Nanosecond)
}

// WeekDays 返回 t 所在周的七天（每天零点）
func (c Calendar) WeekDays(t time.Time) []time.Time {
	start := c.StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = c.AddDays(start, i)
	}
	return days
}

func (c Calendar) StartOfMonth(t time.Time) time.Time {
	t = t.In(c.Loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.Loc)
}

func (c Calendar) EndOfMonth(t time.Time) time.Time {
	return c.StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// MonthGrid 从包含 1 号那一周的第一天到包含月末那一周的最后一天，
// 总天数总是 7 的倍数
func (c Calendar) MonthGrid(month time.Time) []time.Time {
	start := c.StartOfWeek(c.StartOfMonth(month))
	end := c.StartOfWeek(c.EndOfMonth(month))
	end = c.AddDays(end, 6)

	var days []time.Time
	for d := start; !d.After(end); d = c.AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// IsTomorrow 判断 t 是否为 now 的下一个日历日
func (c Calendar) IsTomorrow(t, now time.Time) bool {
	return c.SameDay(t, c.AddDays(now, 1))
}
