package models

import (
	"fmt"

	"spa-roster/pkg/wallclock"
)

type Appointment struct {
	ID int
	At ScheduleKey
}

// FormatLine форматирует запись для вывода в консоль
func (a Appointment) FormatLine() string {
	return fmt.Sprintf("ID No.: %d | Schedule: %s", a.ID, wallclock.FormatDisplay(a.At.Time()))
}

// IsValid проверяет валидность данных
func (a Appointment) IsValid() bool {
	return a.ID > 0 && !a.At.IsZero()
}
