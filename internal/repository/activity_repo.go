package repository

import (
	"errors"

	"spa-roster/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(entry *models.ActivityEntry) error
	GetRecent(limit int) ([]*models.ActivityEntry, error)
	GetByAppointment(appointmentID int) ([]*models.ActivityEntry, error)
	CountByKind() (map[string]int64, error)
}

type GormActivityRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormActivityRepository(db *gorm.DB, logger *logrus.Logger) (*GormActivityRepository, error) {
	// Автомиграция
	if err := db.AutoMigrate(&models.ActivityEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate activity_entries table")
		return nil, err
	}

	logger.Info("Activity repository initialized")

	return &GormActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormActivityRepository) Create(entry *models.ActivityEntry) error {
	if entry.Kind == "" {
		return errors.New("activity kind is required")
	}

	result := r.db.Create(entry)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create activity entry")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":             entry.ID,
		"kind":           entry.Kind,
		"employee_id":    entry.EmployeeID,
		"appointment_id": entry.AppointmentID,
	}).Debug("Activity entry created")

	return nil
}

// GetRecent последние записи журнала, новые первыми
func (r *GormActivityRepository) GetRecent(limit int) ([]*models.ActivityEntry, error) {
	var entries []*models.ActivityEntry
	result := r.db.Order("id DESC").Limit(limit).Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get recent activity")
		return nil, result.Error
	}

	r.logger.WithField("count", len(entries)).Debug("Retrieved recent activity")
	return entries, nil
}

// GetByAppointment история одной записи в порядке появления,
// включая перенос, после которого запись получила новый id
func (r *GormActivityRepository) GetByAppointment(appointmentID int) ([]*models.ActivityEntry, error) {
	var entries []*models.ActivityEntry
	result := r.db.Where("appointment_id = ? OR previous_id = ?", appointmentID, appointmentID).
		Order("id ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get activity by appointment")
		return nil, result.Error
	}

	return entries, nil
}

func (r *GormActivityRepository) CountByKind() (map[string]int64, error) {
	var rows []struct {
		Kind  string
		Count int64
	}
	result := r.db.Model(&models.ActivityEntry{}).
		Select("kind, count(*) as count").
		Group("kind").
		Scan(&rows)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to count activity by kind")
		return nil, result.Error
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
