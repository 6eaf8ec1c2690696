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

// EmployeeHeader строка, с которой начинается каждая карточка в employees.txt
const EmployeeHeader = "-----------EMPLOYEE INFO-----------"

// Поля карточки после заголовка
const employeeFieldCount = 6

func decodeEmployees(r io.Reader) ([]models.Employee, error) {
	scanner := bufio.NewScanner(r)
	var employees []models.Employee
	lineNo := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		if header != EmployeeHeader {
			return nil, fmt.Errorf("line %d: expected employee header, got %q", lineNo, header)
		}

		fields := make([]string, 0, employeeFieldCount)
		for len(fields) < employeeFieldCount {
			line, ok := next()
			if !ok {
				return nil, fmt.Errorf("line %d: truncated employee record", lineNo)
			}
			fields = append(fields, line)
		}

		emp, err := parseEmployee(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		employees = append(employees, emp)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func parseEmployee(fields []string) (models.Employee, error) {
	id, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.Employee{}, fmt.Errorf("invalid employee id %q", fields[2])
	}
	age, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return models.Employee{}, fmt.Errorf("invalid age %q", fields[3])
	}
	position, err := models.ParsePosition(strings.TrimSpace(fields[4]))
	if err != nil {
		return models.Employee{}, err
	}
	hiredOn, err := wallclock.ParseDate(fields[5])
	if err != nil {
		return models.Employee{}, err
	}

	return models.Employee{
		ID:        id,
		LastName:  fields[0],
		FirstName: fields[1],
		Age:       age,
		Position:  position,
		HiredOn:   hiredOn,
	}, nil
}

func encodeEmployees(w io.Writer, staff []roster.StaffSchedule) error {
	for _, s := range staff {
		emp := s.Employee
		_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%d\n%d\n%s\n%s\n",
			EmployeeHeader,
			emp.LastName,
			emp.FirstName,
			emp.ID,
			emp.Age,
			emp.Position,
			wallclock.FormatDate(emp.HiredOn),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
