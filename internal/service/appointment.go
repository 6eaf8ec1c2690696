package service

import (
	"errors"
	"fmt"
	"time"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"

	"github.com/sirupsen/logrus"
)

type AppointmentService struct {
	roster   *SharedRoster
	activity *ActivityService
	notifier Notifier
	logger   *logrus.Logger
}

// NewAppointmentService notifier может быть nil, тогда уведомления не отправляются
func NewAppointmentService(r *SharedRoster, activity *ActivityService, notifier Notifier, logger *logrus.Logger) *AppointmentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &AppointmentService{
		roster:   r,
		activity: activity,
		notifier: notifier,
		logger:   logger,
	}
}

// Book записывает клиента к сотруднику на время at
func (s *AppointmentService) Book(employeeID int, at models.ScheduleKey) (models.Appointment, error) {
	var (
		appointment models.Appointment
		emp         models.Employee
		err         error
	)
	s.roster.Do(func(r *roster.Roster) {
		appointment, err = r.Book(employeeID, at)
		emp, _ = r.Directory().Find(employeeID)
	})
	if err != nil {
		s.rejected(employeeID, at, err)
		return models.Appointment{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"employee_id":    employeeID,
		"at":             at.String(),
	}).Info("Appointment booked")
	s.activity.Record(models.ActivityBook, employeeID, appointment.ID, at.String())
	s.notify(fmt.Sprintf("New appointment ID No. %d with %s on %s", appointment.ID, emp.FullName(), at))

	return appointment, nil
}

func (s *AppointmentService) Find(appointmentID int) (models.Employee, models.Appointment, error) {
	var (
		emp         models.Employee
		appointment models.Appointment
		ok          bool
	)
	s.roster.Do(func(r *roster.Roster) {
		emp, appointment, ok = r.FindAppointment(appointmentID)
	})
	if !ok {
		return models.Employee{}, models.Appointment{}, fmt.Errorf("appointment %d: %w", appointmentID, roster.ErrAppointmentNotFound)
	}
	return emp, appointment, nil
}

// MoveToDate переносит запись на другую дату в то же время
func (s *AppointmentService) MoveToDate(appointmentID int, date time.Time) (roster.Rescheduled, error) {
	return s.reschedule(appointmentID, func(r *roster.Roster) (roster.Rescheduled, error) {
		return r.MoveToDate(appointmentID, date)
	})
}

// MoveToTime переносит запись на другое время в тот же день
func (s *AppointmentService) MoveToTime(appointmentID, hour, minute int) (roster.Rescheduled, error) {
	return s.reschedule(appointmentID, func(r *roster.Roster) (roster.Rescheduled, error) {
		return r.MoveToTime(appointmentID, hour, minute)
	})
}

// Reassign передаёт запись другому сотруднику
func (s *AppointmentService) Reassign(appointmentID, toEmployeeID int) (roster.Rescheduled, error) {
	return s.reschedule(appointmentID, func(r *roster.Roster) (roster.Rescheduled, error) {
		return r.Reassign(appointmentID, toEmployeeID)
	})
}

func (s *AppointmentService) Cancel(appointmentID int) (models.Employee, models.Appointment, error) {
	var (
		emp         models.Employee
		appointment models.Appointment
		err         error
	)
	s.roster.Do(func(r *roster.Roster) {
		emp, appointment, err = r.Cancel(appointmentID)
	})
	if err != nil {
		s.logger.WithField("appointment_id", appointmentID).Warn("Appointment not found for cancellation")
		return models.Employee{}, models.Appointment{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"employee_id":    emp.ID,
	}).Info("Appointment cancelled")
	s.activity.Record(models.ActivityCancel, emp.ID, appointment.ID, appointment.At.String())
	s.notify(fmt.Sprintf("Appointment ID No. %d with %s on %s was cancelled", appointment.ID, emp.FullName(), appointment.At))

	return emp, appointment, nil
}

// reschedule выполняет move под блокировкой, затем журналирует и уведомляет
func (s *AppointmentService) reschedule(appointmentID int, move func(r *roster.Roster) (roster.Rescheduled, error)) (roster.Rescheduled, error) {
	var (
		result  roster.Rescheduled
		ownerID int
		target  models.Employee
		err     error
	)
	s.roster.Do(func(r *roster.Roster) {
		if owner, _, ok := r.FindAppointment(appointmentID); ok {
			ownerID = owner.ID
		}
		result, err = move(r)
		if err == nil {
			target, _ = r.Directory().Find(result.ToEmployeeID)
		}
	})

	if err != nil {
		var conflict *roster.ConflictError
		if errors.As(err, &conflict) {
			s.logger.WithFields(logrus.Fields{
				"appointment_id": appointmentID,
				"employee_id":    ownerID,
				"blocking_id":    conflict.BlockingID,
			}).Warn("Reschedule rejected, original appointment kept")
			s.activity.Record(models.ActivityRescheduleRejected, ownerID, appointmentID,
				fmt.Sprintf("blocked by ID No. %d (%s)", conflict.BlockingID, conflict.BlockingAt))
		} else {
			s.logger.WithError(err).WithField("appointment_id", appointmentID).Warn("Failed to reschedule appointment")
		}
		return roster.Rescheduled{}, err
	}

	fields := logrus.Fields{
		"old_id": result.Previous.ID,
		"new_id": result.Current.ID,
		"at":     result.Current.At.String(),
	}
	if result.FromEmployeeID != result.ToEmployeeID {
		fields["from_employee_id"] = result.FromEmployeeID
		fields["to_employee_id"] = result.ToEmployeeID
	}
	s.logger.WithFields(fields).Info("Appointment rescheduled")

	s.activity.RecordReschedule(result.ToEmployeeID, result.Previous.ID, result.Current.ID,
		fmt.Sprintf("from employee %d, %s to %s", result.FromEmployeeID, result.Previous.At, result.Current.At))

	s.notify(fmt.Sprintf("Appointment ID No. %d moved to ID No. %d with %s on %s",
		result.Previous.ID, result.Current.ID, target.FullName(), result.Current.At))

	return result, nil
}

func (s *AppointmentService) rejected(employeeID int, at models.ScheduleKey, err error) {
	var conflict *roster.ConflictError
	if !errors.As(err, &conflict) {
		s.logger.WithError(err).WithField("employee_id", employeeID).Warn("Failed to book appointment")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"at":          at.String(),
		"blocking_id": conflict.BlockingID,
	}).Warn("Booking rejected by conflict window")
	s.activity.Record(models.ActivityBookRejected, employeeID, 0, fmt.Sprintf("%s blocked by ID No. %d", at, conflict.BlockingID))
}

// notify ошибки отправки только логируются
func (s *AppointmentService) notify(text string) {
	if err := s.notifier.Notify(text); err != nil {
		s.logger.WithError(err).Warn("Failed to send notification")
	}
}
