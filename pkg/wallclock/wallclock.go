package wallclock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout    = "01/02/06"
	ClockLayout   = "15:04"
	DisplayLayout = "01/02/06 at 03:04PM"

	// Двузначные годы меньше pivot относятся к 20xx, остальные к 19xx
	yearPivot = 50
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected mm/dd/yy")
	ErrInvalidClock = errors.New("invalid time, expected hh:mm (24-hr)")
)

// ParseDate разбирает дату в формате mm/dd/yy.
// Дата должна совпасть со строкой после нормализации календарём,
// поэтому 02/30/21 или 2/3/21 отклоняются.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := twoDigits(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}

	year := 1900 + nums[2]
	if nums[2] < yearPivot {
		year = 2000 + nums[2]
	}

	date := time.Date(year, time.Month(nums[0]), nums[1], 0, 0, 0, 0, time.UTC)
	if FormatDate(date) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return date, nil
}

// ParseClock разбирает время hh:mm в 24-часовом формате
func ParseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err = twoDigits(parts[0])
	if err != nil || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minute, err = twoDigits(parts[1])
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour, minute, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDisplay форматирует дату и время для вывода пользователю
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

func twoDigits(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("expected two digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("expected two digits, got %q", s)
		}
	}
	return strconv.Atoi(s)
}
