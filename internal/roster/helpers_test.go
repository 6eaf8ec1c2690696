package roster

import (
	"testing"
	"time"

	"spa-roster/internal/models"
)

func at(day, hour, minute int) models.ScheduleKey {
	return models.ScheduleKeyOf(2024, time.May, day, hour, minute)
}

func newEmployee(last, first string) models.Employee {
	return models.Employee{
		LastName:  last,
		FirstName: first,
		Age:       30,
		Position:  models.PositionMassageTherapist,
		HiredOn:   time.Date(2019, time.October, 12, 0, 0, 0, 0, time.UTC),
	}
}

func mustBook(t *testing.T, r *Roster, employeeID int, key models.ScheduleKey) models.Appointment {
	t.Helper()
	a, err := r.Book(employeeID, key)
	if err != nil {
		t.Fatalf("Book(%d, %v): %v", employeeID, key, err)
	}
	return a
}

func assertLedgerSorted(t *testing.T, l *Ledger) {
	t.Helper()
	items := l.All()
	for i := 1; i < len(items); i++ {
		gap := items[i].At.DistanceMinutes(items[i-1].At)
		if gap < models.ConflictWindowMinutes {
			t.Fatalf("entries %d and %d are %d minutes apart: %v", items[i-1].ID, items[i].ID, gap, items)
		}
	}
}

func assertDirectorySorted(t *testing.T, d *Directory) {
	t.Helper()
	all := d.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].CompareName(all[i]) > 0 {
			t.Fatalf("directory out of order at %d: %q before %q", i, all[i-1].FullName(), all[i].FullName())
		}
	}
}

func ids(items []models.Appointment) []int {
	result := make([]int, 0, len(items))
	for _, a := range items {
		result = append(result, a.ID)
	}
	return result
}
