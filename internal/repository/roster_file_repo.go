package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"spa-roster/internal/roster"

	"github.com/sirupsen/logrus"
)

type RosterRepository interface {
	Load() ([]roster.LoadRecord, error)
	Save(staff []roster.StaffSchedule) error
}

// FileRosterRepository хранит сотрудников и записи в двух текстовых файлах
type FileRosterRepository struct {
	employeesPath    string
	appointmentsPath string
	logger           *logrus.Logger
}

func NewFileRosterRepository(employeesPath, appointmentsPath string, logger *logrus.Logger) *FileRosterRepository {
	return &FileRosterRepository{
		employeesPath:    employeesPath,
		appointmentsPath: appointmentsPath,
		logger:           logger,
	}
}

// Load читает оба файла. Отсутствующий файл означает пустой ростер.
// Блоки записей сопоставляются с сотрудниками по порядку в файлах.
func (r *FileRosterRepository) Load() ([]roster.LoadRecord, error) {
	employees, err := readFile(r.employeesPath, decodeEmployees)
	if err != nil {
		r.logger.WithError(err).WithField("path", r.employeesPath).Error("Failed to read employees")
		return nil, err
	}

	clusters, err := readFile(r.appointmentsPath, decodeAppointments)
	if err != nil {
		r.logger.WithError(err).WithField("path", r.appointmentsPath).Error("Failed to read appointments")
		return nil, err
	}

	if len(clusters) > len(employees) {
		r.logger.WithFields(logrus.Fields{
			"employees": len(employees),
			"clusters":  len(clusters),
		}).Warn("Appointment file has more blocks than employees, extra blocks ignored")
	}

	records := make([]roster.LoadRecord, 0, len(employees))
	for i, emp := range employees {
		rec := roster.LoadRecord{Employee: emp}
		if i < len(clusters) {
			rec.Appointments = clusters[i]
		}
		records = append(records, rec)
	}

	r.logger.WithFields(logrus.Fields{
		"employees": len(employees),
		"clusters":  len(clusters),
	}).Info("Roster files loaded")

	return records, nil
}

// Save сначала пишет оба временных файла и только потом заменяет ими
// старые, чтобы ошибка записи не оставила новый employees.txt рядом со
// старым appointments.txt.
func (r *FileRosterRepository) Save(staff []roster.StaffSchedule) error {
	employeesTmp, err := writeTemp(r.employeesPath, func(w *bufio.Writer) error {
		return encodeEmployees(w, staff)
	})
	if err != nil {
		r.logger.WithError(err).WithField("path", r.employeesPath).Error("Failed to save employees")
		return err
	}
	defer os.Remove(employeesTmp)

	appointmentsTmp, err := writeTemp(r.appointmentsPath, func(w *bufio.Writer) error {
		return encodeAppointments(w, staff)
	})
	if err != nil {
		r.logger.WithError(err).WithField("path", r.appointmentsPath).Error("Failed to save appointments")
		return err
	}
	defer os.Remove(appointmentsTmp)

	if err := os.Rename(employeesTmp, r.employeesPath); err != nil {
		r.logger.WithError(err).WithField("path", r.employeesPath).Error("Failed to replace employees")
		return fmt.Errorf("replace %s: %w", r.employeesPath, err)
	}
	if err := os.Rename(appointmentsTmp, r.appointmentsPath); err != nil {
		r.logger.WithError(err).WithField("path", r.appointmentsPath).Error("Failed to replace appointments")
		return fmt.Errorf("replace %s: %w", r.appointmentsPath, err)
	}

	r.logger.WithField("employees", len(staff)).Info("Roster files saved")
	return nil
}

func readFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// writeTemp пишет содержимое во временный файл рядом с path и возвращает его имя
func writeTemp(path string, encode func(w *bufio.Writer) error) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := encode(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return tmpName, nil
}
