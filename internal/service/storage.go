package service

import (
	"fmt"

	"spa-roster/internal/models"
	"spa-roster/internal/repository"
	"spa-roster/internal/roster"

	"github.com/sirupsen/logrus"
)

// StorageService загружает и сохраняет ростер через репозиторий файлов
type StorageService struct {
	repo     repository.RosterRepository
	roster   *SharedRoster
	activity *ActivityService
	logger   *logrus.Logger
}

func NewStorageService(repo repository.RosterRepository, r *SharedRoster, activity *ActivityService, logger *logrus.Logger) *StorageService {
	return &StorageService{
		repo:     repo,
		roster:   r,
		activity: activity,
		logger:   logger,
	}
}

// Load читает файлы и заменяет ими текущее содержимое ростера
func (s *StorageService) Load() (roster.LoadReport, error) {
	records, err := s.repo.Load()
	if err != nil {
		s.logger.WithError(err).Error("Failed to read roster files")
		return roster.LoadReport{}, fmt.Errorf("load roster: %w", err)
	}

	var report roster.LoadReport
	s.roster.Do(func(r *roster.Roster) {
		report = r.Load(records)
	})

	for _, issue := range report.Dropped {
		s.logger.WithFields(logrus.Fields{
			"employee_id":    issue.EmployeeID,
			"appointment_id": issue.Appointment.ID,
			"at":             issue.Appointment.At.String(),
			"blocking_id":    issue.BlockingID,
		}).Warn("Dropped conflicting appointment from file")
		s.activity.Record(models.ActivityLoadConflict, issue.EmployeeID, issue.Appointment.ID,
			fmt.Sprintf("%s blocked by ID No. %d", issue.Appointment.At, issue.BlockingID))
	}

	for _, issue := range report.Rekeyed {
		s.logger.WithFields(logrus.Fields{
			"employee_id": issue.EmployeeID,
			"old_id":      issue.OldID,
			"new_id":      issue.NewID,
		}).Warn("Duplicate ID in file was reassigned")
		s.activity.Record(models.ActivityLoadRekey, issue.EmployeeID, issue.Appointment.ID,
			fmt.Sprintf("ID No. %d became %d", issue.OldID, issue.NewID))
	}

	s.logger.WithFields(logrus.Fields{
		"employees":    report.Employees,
		"appointments": report.Appointments,
		"dropped":      len(report.Dropped),
		"rekeyed":      len(report.Rekeyed),
	}).Info("Roster loaded")

	return report, nil
}

// Save записывает весь ростер в файлы
func (s *StorageService) Save() error {
	var staff []roster.StaffSchedule
	s.roster.Do(func(r *roster.Roster) {
		staff = r.Directory().Snapshot()
	})

	if err := s.repo.Save(staff); err != nil {
		s.logger.WithError(err).Error("Failed to save roster")
		return fmt.Errorf("save roster: %w", err)
	}

	appointments := 0
	for _, member := range staff {
		appointments += len(member.Appointments)
	}

	s.logger.WithFields(logrus.Fields{
		"employees":    len(staff),
		"appointments": appointments,
	}).Info("Roster saved")
	s.activity.Record(models.ActivitySave, 0, 0, fmt.Sprintf("%d employee(s), %d appointment(s)", len(staff), appointments))

	return nil
}
