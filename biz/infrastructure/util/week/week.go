// Package week 计算以上课日为起点的自然周区间
package week

import (
	"errors"
	"time"
)

const DaysPerWeek = 7

var ErrInvalidAnchorDay = errors.New("anchor day must be between 0 (Sunday) and 6 (Saturday)")

// Window 闭区间 [Start, End], Start 为上课日零点, End 为六天后 23:59:59.999
type Window struct {
	Start time.Time `json:"weekStart"`
	End   time.Time `json:"weekEnd"`
}

// ValidAnchorDay 上课日取值 0-6, 0 为周日
func ValidAnchorDay(day int) bool {
	return day >= 0 && day < DaysPerWeek
}

// Resolve 返回 ref 所在的周区间, 周起点为最近一次(含当天)的 anchorDay.
// 区间按 ref 所在时区的日历日计算.
func Resolve(ref time.Time, anchorDay int) (Window, error) {
	if !ValidAnchorDay(anchorDay) {
		return Window{}, ErrInvalidAnchorDay
	}

	diff := (int(ref.Weekday()) - anchorDay + DaysPerWeek) % DaysPerWeek
	y, m, d := ref.Date()
	loc := ref.Location()

	// time.Date 会对越界的日期做归一化, 跨月跨年与夏令时都由它处理
	start := time.Date(y, m, d-diff, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d-diff+DaysPerWeek-1, 23, 59, 59, int(999*time.Millisecond), loc)
	return Window{Start: start, End: end}, nil
}

// Contains 判断 t 是否落在区间内
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
