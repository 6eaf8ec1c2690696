package service

import (
	"errors"
	"io"
	"time"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeActivityRepo struct {
	entries []*models.ActivityEntry
	failing bool
}

func (f *fakeActivityRepo) Create(entry *models.ActivityEntry) error {
	if f.failing {
		return errors.New("disk full")
	}
	entry.ID = uint(len(f.entries) + 1)
	entry.CreatedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActivityRepo) GetRecent(limit int) ([]*models.ActivityEntry, error) {
	var out []*models.ActivityEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

func (f *fakeActivityRepo) GetByAppointment(appointmentID int) ([]*models.ActivityEntry, error) {
	var out []*models.ActivityEntry
	for _, e := range f.entries {
		if e.AppointmentID == appointmentID || e.PreviousID == appointmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) CountByKind() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, e := range f.entries {
		counts[e.Kind]++
	}
	return counts, nil
}

func (f *fakeActivityRepo) kinds() []string {
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Kind)
	}
	return out
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

type fakeRosterRepo struct {
	records []roster.LoadRecord
	saved   []roster.StaffSchedule
	loadErr error
}

func (f *fakeRosterRepo) Load() ([]roster.LoadRecord, error) {
	return f.records, f.loadErr
}

func (f *fakeRosterRepo) Save(staff []roster.StaffSchedule) error {
	f.saved = staff
	return nil
}

func key(day, hour, minute int) models.ScheduleKey {
	return models.ScheduleKeyOf(2024, time.May, day, hour, minute)
}

var hiredOn = time.Date(2019, 10, 12, 0, 0, 0, 0, time.UTC)
