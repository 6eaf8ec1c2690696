// Package roster хранит справочник сотрудников спа и их записи и следит за
// порядком и 30-минутным интервалом между записями одного сотрудника.
//
// Пакет однопоточный: все операции выполняются синхронно из консольного цикла.
package roster

import (
	"fmt"
	"time"

	"spa-roster/internal/models"
)

type Roster struct {
	dir            *Directory
	employeeIDs    *IDAllocator
	appointmentIDs *IDAllocator
}

func New() *Roster {
	return &Roster{
		dir:            NewDirectory(),
		employeeIDs:    NewIDAllocator(0),
		appointmentIDs: NewIDAllocator(0),
	}
}

// Directory доступ к справочнику для просмотра
func (r *Roster) Directory() *Directory {
	return r.dir
}

// Hire присваивает сотруднику следующий id и добавляет в справочник
func (r *Roster) Hire(emp models.Employee) models.Employee {
	emp.ID = r.employeeIDs.Next()
	r.dir.Insert(emp)
	return emp
}

func (r *Roster) UpdateEmployee(emp models.Employee) error {
	if err := r.dir.Update(emp); err != nil {
		return fmt.Errorf("update employee %d: %w", emp.ID, err)
	}
	return nil
}

// Dismiss удаляет сотрудника; его записи удаляются вместе с ним
func (r *Roster) Dismiss(employeeID int) (models.Employee, error) {
	emp, err := r.dir.Remove(employeeID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("dismiss employee %d: %w", employeeID, err)
	}
	return emp, nil
}

func (r *Roster) DismissAll() int {
	return r.dir.RemoveAll()
}

// Book записывает клиента к сотруднику. Id выдаётся только после успешной проверки.
func (r *Roster) Book(employeeID int, at models.ScheduleKey) (models.Appointment, error) {
	ledger, ok := r.dir.LedgerOf(employeeID)
	if !ok {
		return models.Appointment{}, fmt.Errorf("book with employee %d: %w", employeeID, ErrEmployeeNotFound)
	}
	if blocking, conflict := ledger.Conflict(at); conflict {
		return models.Appointment{}, &ConflictError{BlockingID: blocking.ID, BlockingAt: blocking.At}
	}

	appointment := models.Appointment{ID: r.appointmentIDs.Next(), At: at}
	if err := ledger.Insert(appointment); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// FindAppointment возвращает запись и её владельца
func (r *Roster) FindAppointment(appointmentID int) (models.Employee, models.Appointment, bool) {
	owner := r.dir.ownerEntry(appointmentID)
	if owner == nil {
		return models.Employee{}, models.Appointment{}, false
	}
	appointment, _ := owner.ledger.Find(appointmentID)
	return owner.employee, appointment, true
}

// Cancel удаляет запись у её владельца
func (r *Roster) Cancel(appointmentID int) (models.Employee, models.Appointment, error) {
	owner := r.dir.ownerEntry(appointmentID)
	if owner == nil {
		return models.Employee{}, models.Appointment{}, fmt.Errorf("cancel appointment %d: %w", appointmentID, ErrAppointmentNotFound)
	}
	removed, err := owner.ledger.Remove(appointmentID)
	if err != nil {
		return models.Employee{}, models.Appointment{}, fmt.Errorf("cancel appointment %d: %w", appointmentID, err)
	}
	return owner.employee, removed, nil
}

// Rescheduled результат переноса записи
type Rescheduled struct {
	Previous       models.Appointment
	Current        models.Appointment
	FromEmployeeID int
	ToEmployeeID   int
}

// Reschedule переносит запись: удаляет её, затем ставит заново с новым id
// на время at у сотрудника toEmployeeID. При конфликте исходная запись
// возвращается на место со старым id, а наружу уходит *ConflictError.
func (r *Roster) Reschedule(appointmentID int, at models.ScheduleKey, toEmployeeID int) (Rescheduled, error) {
	owner := r.dir.ownerEntry(appointmentID)
	if owner == nil {
		return Rescheduled{}, fmt.Errorf("reschedule appointment %d: %w", appointmentID, ErrAppointmentNotFound)
	}
	target := r.dir.entry(toEmployeeID)
	if target == nil {
		return Rescheduled{}, fmt.Errorf("reschedule appointment %d: %w", appointmentID, ErrEmployeeNotFound)
	}

	original, err := owner.ledger.Remove(appointmentID)
	if err != nil {
		return Rescheduled{}, fmt.Errorf("reschedule appointment %d: %w", appointmentID, err)
	}

	if blocking, conflict := target.ledger.Conflict(at); conflict {
		if err := owner.ledger.Insert(original); err != nil {
			return Rescheduled{}, fmt.Errorf("restore appointment %d: %w", original.ID, err)
		}
		return Rescheduled{}, &ConflictError{BlockingID: blocking.ID, BlockingAt: blocking.At}
	}

	moved := models.Appointment{ID: r.appointmentIDs.Next(), At: at}
	if err := target.ledger.Insert(moved); err != nil {
		if restoreErr := owner.ledger.Insert(original); restoreErr != nil {
			return Rescheduled{}, fmt.Errorf("restore appointment %d: %w", original.ID, restoreErr)
		}
		return Rescheduled{}, err
	}

	return Rescheduled{
		Previous:       original,
		Current:        moved,
		FromEmployeeID: owner.employee.ID,
		ToEmployeeID:   target.employee.ID,
	}, nil
}

// MoveToDate меняет дату, оставляя время
func (r *Roster) MoveToDate(appointmentID int, date time.Time) (Rescheduled, error) {
	owner, appointment, ok := r.FindAppointment(appointmentID)
	if !ok {
		return Rescheduled{}, fmt.Errorf("reschedule appointment %d: %w", appointmentID, ErrAppointmentNotFound)
	}
	return r.Reschedule(appointmentID, appointment.At.WithDate(date), owner.ID)
}

// MoveToTime меняет время, оставляя дату
func (r *Roster) MoveToTime(appointmentID, hour, minute int) (Rescheduled, error) {
	owner, appointment, ok := r.FindAppointment(appointmentID)
	if !ok {
		return Rescheduled{}, fmt.Errorf("reschedule appointment %d: %w", appointmentID, ErrAppointmentNotFound)
	}
	return r.Reschedule(appointmentID, appointment.At.WithClock(hour, minute), owner.ID)
}

// Reassign передаёт запись другому сотруднику на то же время
func (r *Roster) Reassign(appointmentID, toEmployeeID int) (Rescheduled, error) {
	_, appointment, ok := r.FindAppointment(appointmentID)
	if !ok {
		return Rescheduled{}, fmt.Errorf("reassign appointment %d: %w", appointmentID, ErrAppointmentNotFound)
	}
	return r.Reschedule(appointmentID, appointment.At, toEmployeeID)
}

// LastEmployeeID последний выданный id сотрудника
func (r *Roster) LastEmployeeID() int {
	return r.employeeIDs.Last()
}

// LastAppointmentID последний выданный id записи
func (r *Roster) LastAppointmentID() int {
	return r.appointmentIDs.Last()
}
