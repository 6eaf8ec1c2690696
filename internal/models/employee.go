package models

import (
	"fmt"
	"strings"
	"time"

	"spa-roster/pkg/wallclock"
)

type Employee struct {
	ID        int
	LastName  string
	FirstName string
	Age       int
	Position  Position
	HiredOn   time.Time
}

// CompareName сравнивает по фамилии, затем по имени (с учётом регистра)
func (e Employee) CompareName(other Employee) int {
	if c := strings.Compare(e.LastName, other.LastName); c != 0 {
		return c
	}
	return strings.Compare(e.FirstName, other.FirstName)
}

// FullName возвращает "Фамилия, Имя"
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}

// IsValid проверяет валидность данных
func (e Employee) IsValid() bool {
	if e.LastName == "" || e.FirstName == "" {
		return false
	}
	if !e.Position.IsValid() {
		return false
	}
	return !e.HiredOn.IsZero()
}

// FormatDetails форматирует карточку сотрудника для вывода
func (e Employee) FormatDetails() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Surname: %s\n", e.LastName)
	fmt.Fprintf(&b, "Given Name: %s\n", e.FirstName)
	fmt.Fprintf(&b, "Employee Number: %d\n", e.ID)
	fmt.Fprintf(&b, "Age: %d\n", e.Age)
	fmt.Fprintf(&b, "Position: %s\n", e.Position)
	fmt.Fprintf(&b, "Date Hired: %s\n", wallclock.FormatDate(e.HiredOn))
	return b.String()
}
