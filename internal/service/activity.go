package service

import (
	"fmt"
	"sort"
	"strings"

	"spa-roster/internal/models"
	"spa-roster/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActivityService пишет журнал действий. Без репозитория журнал отключён,
// и Record только логирует.
type ActivityService struct {
	repo      repository.ActivityRepository
	sessionID string
	logger    *logrus.Logger
}

func NewActivityService(repo repository.ActivityRepository, logger *logrus.Logger) *ActivityService {
	return &ActivityService{
		repo:      repo,
		sessionID: uuid.NewString(),
		logger:    logger,
	}
}

// SessionID идентификатор текущего запуска программы
func (s *ActivityService) SessionID() string {
	return s.sessionID
}

func (s *ActivityService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record добавляет запись в журнал. Ошибка журнала не должна ломать работу с ростером,
// поэтому она только логируется.
func (s *ActivityService) Record(kind string, employeeID, appointmentID int, details string) {
	if !s.Enabled() {
		return
	}

	s.create(&models.ActivityEntry{
		Kind:          kind,
		EmployeeID:    employeeID,
		AppointmentID: appointmentID,
		Details:       details,
	})
}

// RecordReschedule запись о переносе, доступная в истории и старого, и нового id
func (s *ActivityService) RecordReschedule(employeeID, previousID, currentID int, details string) {
	if !s.Enabled() {
		return
	}

	s.create(&models.ActivityEntry{
		Kind:          models.ActivityReschedule,
		EmployeeID:    employeeID,
		AppointmentID: currentID,
		PreviousID:    previousID,
		Details:       details,
	})
}

func (s *ActivityService) create(entry *models.ActivityEntry) {
	entry.SessionID = s.sessionID
	if err := s.repo.Create(entry); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"kind":           entry.Kind,
			"employee_id":    entry.EmployeeID,
			"appointment_id": entry.AppointmentID,
		}).Warn("Failed to record activity")
	}
}

// FormatRecent последние записи журнала и счётчики по типам
func (s *ActivityService) FormatRecent(limit int) (string, error) {
	if !s.Enabled() {
		return "Activity log is disabled.", nil
	}

	entries, err := s.repo.GetRecent(limit)
	if err != nil {
		return "", fmt.Errorf("read activity log: %w", err)
	}
	counts, err := s.repo.CountByKind()
	if err != nil {
		return "", fmt.Errorf("count activity log: %w", err)
	}

	if len(entries) == 0 {
		return "Activity log is empty.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-------------------------\nRECENT ACTIVITY (last %d)\n-------------------------\n", limit)
	for _, e := range entries {
		marker := " "
		if e.SessionID == s.sessionID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  %-20s", marker, e.CreatedAt.Format("2006-01-02 15:04"), e.Kind)
		if e.EmployeeID != 0 {
			fmt.Fprintf(&b, " emp=%d", e.EmployeeID)
		}
		if e.AppointmentID != 0 {
			fmt.Fprintf(&b, " app=%d", e.AppointmentID)
		}
		if e.Details != "" {
			fmt.Fprintf(&b, "  %s", e.Details)
		}
		b.WriteString("\n")
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	b.WriteString("\nTotals:\n")
	for _, kind := range kinds {
		fmt.Fprintf(&b, "  %-20s %d\n", kind, counts[kind])
	}
	b.WriteString("(* = this session)\n")

	return b.String(), nil
}

// FormatHistory история записи по её id
func (s *ActivityService) FormatHistory(appointmentID int) (string, error) {
	if !s.Enabled() {
		return "Activity log is disabled.", nil
	}

	entries, err := s.repo.GetByAppointment(appointmentID)
	if err != nil {
		return "", fmt.Errorf("read appointment history: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No activity recorded for ID No. %d.", appointmentID), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "History of ID No. %d:\n", appointmentID)
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %-20s", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind)
		if e.PreviousID != 0 {
			fmt.Fprintf(&b, " ID No. %d -> %d,", e.PreviousID, e.AppointmentID)
		}
		fmt.Fprintf(&b, " %s\n", e.Details)
	}
	return b.String(), nil
}
