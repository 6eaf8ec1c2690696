package service

import (
	"fmt"
	"strings"
	"time"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	roster   *SharedRoster
	activity *ActivityService
	logger   *logrus.Logger
}

func NewEmployeeService(r *SharedRoster, activity *ActivityService, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{
		roster:   r,
		activity: activity,
		logger:   logger,
	}
}

// Hire создаёт сотрудника и присваивает ему следующий id
func (s *EmployeeService) Hire(lastName, firstName string, age int, position models.Position, hiredOn time.Time) (models.Employee, error) {
	emp := models.Employee{
		LastName:  lastName,
		FirstName: firstName,
		Age:       age,
		Position:  position,
		HiredOn:   hiredOn,
	}

	if !emp.IsValid() {
		s.logger.WithFields(logrus.Fields{
			"last_name":  lastName,
			"first_name": firstName,
			"position":   position,
		}).Warn("Invalid employee data provided")
		return models.Employee{}, fmt.Errorf("invalid employee data: names, position and hire date are required")
	}

	s.roster.Do(func(r *roster.Roster) {
		emp = r.Hire(emp)
	})

	s.logger.WithFields(logrus.Fields{
		"id":       emp.ID,
		"name":     emp.FullName(),
		"position": emp.Position,
	}).Info("Employee hired")
	s.activity.Record(models.ActivityHire, emp.ID, 0, emp.FullName())

	return emp, nil
}

// Update сохраняет изменённые имя, возраст или должность
func (s *EmployeeService) Update(emp models.Employee) error {
	if !emp.IsValid() {
		s.logger.WithField("id", emp.ID).Warn("Invalid employee data for update")
		return fmt.Errorf("invalid employee data")
	}

	var err error
	s.roster.Do(func(r *roster.Roster) {
		err = r.UpdateEmployee(emp)
	})
	if err != nil {
		s.logger.WithError(err).WithField("id", emp.ID).Warn("Failed to update employee")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"id":   emp.ID,
		"name": emp.FullName(),
	}).Info("Employee updated")
	s.activity.Record(models.ActivityEmployeeUpdate, emp.ID, 0, emp.FullName())

	return nil
}

func (s *EmployeeService) Get(id int) (models.Employee, error) {
	s.logger.WithField("id", id).Debug("Getting employee by ID")

	var (
		emp models.Employee
		ok  bool
	)
	s.roster.Do(func(r *roster.Roster) {
		emp, ok = r.Directory().Find(id)
	})
	if !ok {
		return models.Employee{}, fmt.Errorf("employee %d: %w", id, roster.ErrEmployeeNotFound)
	}
	return emp, nil
}

// Appointments записи сотрудника по возрастанию времени
func (s *EmployeeService) Appointments(id int) ([]models.Appointment, error) {
	var (
		appointments []models.Appointment
		ok           bool
	)
	s.roster.Do(func(r *roster.Roster) {
		appointments, ok = appointmentsOf(r, id)
	})
	if !ok {
		return nil, fmt.Errorf("employee %d: %w", id, roster.ErrEmployeeNotFound)
	}
	return appointments, nil
}

// Dismiss удаляет сотрудника. Возвращает количество удалённых вместе с ним записей.
func (s *EmployeeService) Dismiss(id int) (models.Employee, int, error) {
	var (
		emp          models.Employee
		appointments []models.Appointment
		err          error
	)
	s.roster.Do(func(r *roster.Roster) {
		appointments, _ = appointmentsOf(r, id)
		emp, err = r.Dismiss(id)
	})
	if err != nil {
		s.logger.WithField("id", id).Warn("Employee not found for deletion")
		return models.Employee{}, 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":                     emp.ID,
		"name":                   emp.FullName(),
		"discarded_appointments": len(appointments),
	}).Info("Employee deleted")
	s.activity.Record(models.ActivityDismiss, emp.ID, 0, fmt.Sprintf("%s, %d appointment(s) discarded", emp.FullName(), len(appointments)))

	return emp, len(appointments), nil
}

func (s *EmployeeService) DismissAll() int {
	var n int
	s.roster.Do(func(r *roster.Roster) {
		n = r.DismissAll()
	})

	s.logger.WithField("count", n).Info("All employees deleted")
	s.activity.Record(models.ActivityDismissAll, 0, 0, fmt.Sprintf("%d employee(s)", n))

	return n
}

func (s *EmployeeService) All() []models.Employee {
	var all []models.Employee
	s.roster.Do(func(r *roster.Roster) {
		all = r.Directory().All()
	})
	return all
}

func (s *EmployeeService) ByPosition(p models.Position) []models.Employee {
	s.logger.WithField("position", p).Debug("Getting employees by position")
	var found []models.Employee
	s.roster.Do(func(r *roster.Roster) {
		found = r.Directory().ByPosition(p)
	})
	return found
}

// FormatEmployee карточка сотрудника вместе с записями
func (s *EmployeeService) FormatEmployee(emp models.Employee, appointments []models.Appointment) string {
	var b strings.Builder
	b.WriteString(emp.FormatDetails())

	if len(appointments) == 0 {
		b.WriteString("No appointments booked.\n")
		return b.String()
	}

	b.WriteString("Appointments:\n")
	for _, a := range appointments {
		b.WriteString(a.FormatLine())
		b.WriteString("\n")
	}
	return b.String()
}

// FormatList список сотрудников под заголовком
func (s *EmployeeService) FormatList(title string, employees []models.Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-------------------------\n%s\n-------------------------\n", title)

	if len(employees) == 0 {
		b.WriteString("No employees found.\n")
		return b.String()
	}

	for _, emp := range employees {
		b.WriteString(emp.FormatDetails())
		b.WriteString("\n")
	}
	return b.String()
}

func appointmentsOf(r *roster.Roster, employeeID int) ([]models.Appointment, bool) {
	ledger, ok := r.Directory().LedgerOf(employeeID)
	if !ok {
		return nil, false
	}
	return ledger.All(), true
}
