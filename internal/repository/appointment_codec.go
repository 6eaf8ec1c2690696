package repository

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"
	"spa-roster/pkg/wallclock"
)

// EndOfEmployee закрывает блок записей одного сотрудника в appointments.txt
const EndOfEmployee = "---END---"

// decodeAppointments возвращает блоки записей в порядке файла.
// Незакрытый последний блок тоже возвращается.
func decodeAppointments(r io.Reader) ([][]models.Appointment, error) {
	scanner := bufio.NewScanner(r)
	var (
		clusters [][]models.Appointment
		current  []models.Appointment
		open     bool
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line == EndOfEmployee {
			clusters = append(clusters, current)
			current, open = nil, false
			continue
		}

		a, err := parseAppointment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current = append(current, a)
		open = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if open {
		clusters = append(clusters, current)
	}
	return clusters, nil
}

// parseAppointment разбирает строку вида 05/01/24|09:00|3
func parseAppointment(line string) (models.Appointment, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return models.Appointment{}, fmt.Errorf("expected date|time|id, got %q", line)
	}
	date, err := wallclock.ParseDate(parts[0])
	if err != nil {
		return models.Appointment{}, err
	}
	hour, minute, err := wallclock.ParseClock(parts[1])
	if err != nil {
		return models.Appointment{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.Appointment{}, fmt.Errorf("invalid appointment id %q", parts[2])
	}

	return models.Appointment{ID: id, At: models.NewScheduleKey(date, hour, minute)}, nil
}

func encodeAppointments(w io.Writer, staff []roster.StaffSchedule) error {
	for _, s := range staff {
		for _, a := range s.Appointments {
			if _, err := fmt.Fprintf(w, "%s|%s|%d\n",
				wallclock.FormatDate(a.At.Date()),
				wallclock.FormatClock(a.At.Time()),
				a.ID,
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, EndOfEmployee); err != nil {
			return err
		}
	}
	return nil
}
