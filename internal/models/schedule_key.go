package models

import (
	"time"

	"spa-roster/pkg/wallclock"
)

// ConflictWindowMinutes минимальный интервал между записями одного сотрудника
const ConflictWindowMinutes = 30

// ScheduleKey дата и время записи с точностью до минуты.
// Хранится как UTC, поэтому переходы на летнее время не влияют на разницу.
type ScheduleKey struct {
	wall time.Time
}

// NewScheduleKey собирает ключ из даты (время суток отбрасывается) и часов/минут
func NewScheduleKey(date time.Time, hour, minute int) ScheduleKey {
	return ScheduleKey{
		wall: time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC),
	}
}

func ScheduleKeyOf(year int, month time.Month, day, hour, minute int) ScheduleKey {
	return ScheduleKey{wall: time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// DistanceMinutes возвращает k - other в минутах
func (k ScheduleKey) DistanceMinutes(other ScheduleKey) int {
	return int(k.wall.Sub(other.wall) / time.Minute)
}

// WithinConflictWindow true, если записи ближе 30 минут друг к другу.
// Ровно 30 минут конфликтом не считается.
func (k ScheduleKey) WithinConflictWindow(other ScheduleKey) bool {
	d := k.DistanceMinutes(other)
	return d > -ConflictWindowMinutes && d < ConflictWindowMinutes
}

func (k ScheduleKey) Before(other ScheduleKey) bool { return k.wall.Before(other.wall) }
func (k ScheduleKey) After(other ScheduleKey) bool  { return k.wall.After(other.wall) }
func (k ScheduleKey) Equal(other ScheduleKey) bool  { return k.wall.Equal(other.wall) }
func (k ScheduleKey) IsZero() bool                  { return k.wall.IsZero() }

// Date возвращает дату без времени суток
func (k ScheduleKey) Date() time.Time {
	return time.Date(k.wall.Year(), k.wall.Month(), k.wall.Day(), 0, 0, 0, 0, time.UTC)
}

func (k ScheduleKey) Hour() int       { return k.wall.Hour() }
func (k ScheduleKey) Minute() int     { return k.wall.Minute() }
func (k ScheduleKey) Time() time.Time { return k.wall }

// WithDate переносит запись на другую дату, сохраняя время
func (k ScheduleKey) WithDate(date time.Time) ScheduleKey {
	return NewScheduleKey(date, k.Hour(), k.Minute())
}

// WithClock переносит запись на другое время в тот же день
func (k ScheduleKey) WithClock(hour, minute int) ScheduleKey {
	return NewScheduleKey(k.wall, hour, minute)
}

func (k ScheduleKey) String() string {
	return wallclock.FormatDisplay(k.wall)
}
