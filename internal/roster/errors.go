package roster

import (
	"errors"
	"fmt"

	"spa-roster/internal/models"
)

var (
	ErrEmployeeNotFound    = errors.New("employee does not exist")
	ErrAppointmentNotFound = errors.New("appointment does not exist")
)

// ConflictError кандидат попадает в 30-минутное окно существующей записи
type ConflictError struct {
	BlockingID int
	BlockingAt models.ScheduleKey
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("proposed appointment conflicts with existing appointment: ID No. %d (%s)", e.BlockingID, e.BlockingAt)
}
