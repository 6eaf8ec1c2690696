package roster

import (
	"slices"
	"testing"

	"spa-roster/internal/models"
)

func record(id int, last, first string, appointments ...models.Appointment) LoadRecord {
	emp := newEmployee(last, first)
	emp.ID = id
	return LoadRecord{Employee: emp, Appointments: appointments}
}

func TestLoad_RebuildsSortedStructures(t *testing.T) {
	r := New()
	report := r.Load([]LoadRecord{
		record(2, "Reyes", "Ana",
			models.Appointment{ID: 5, At: at(1, 11, 0)},
			models.Appointment{ID: 3, At: at(1, 9, 0)},
		),
		record(1, "Abad", "Zoe", models.Appointment{ID: 4, At: at(2, 9, 0)}),
	})

	if report.Employees != 2 || report.Appointments != 3 {
		t.Fatalf("report = %+v", report)
	}
	assertDirectorySorted(t, r.Directory())
	if r.Directory().All()[0].ID != 1 {
		t.Fatal("Abad should come first")
	}
	ledger, _ := r.Directory().LedgerOf(2)
	if got := ids(ledger.All()); !slices.Equal(got, []int{3, 5}) {
		t.Fatalf("ledger order = %v, want [3 5]", got)
	}
}

func TestLoad_SeedsCounters(t *testing.T) {
	r := New()
	r.Load([]LoadRecord{
		record(7, "Reyes", "Ana", models.Appointment{ID: 12, At: at(1, 9, 0)}),
		record(2, "Abad", "Zoe"),
	})

	emp := r.Hire(newEmployee("Cruz", "Ben"))
	if emp.ID != 8 {
		t.Fatalf("next employee id = %d, want 8", emp.ID)
	}
	a := mustBook(t, r, emp.ID, at(1, 9, 0))
	if a.ID != 13 {
		t.Fatalf("next appointment id = %d, want 13", a.ID)
	}
}

func TestLoad_EmployeeCounterStartsAtCount(t *testing.T) {
	r := New()
	r.Load([]LoadRecord{record(1, "A", "A"), record(2, "B", "B"), record(3, "C", "C")})
	if emp := r.Hire(newEmployee("D", "D")); emp.ID != 4 {
		t.Fatalf("next employee id = %d, want 4", emp.ID)
	}
}

func TestLoad_ConflictingRecordsAreReported(t *testing.T) {
	r := New()
	report := r.Load([]LoadRecord{
		record(1, "Reyes", "Ana",
			models.Appointment{ID: 1, At: at(1, 9, 0)},
			models.Appointment{ID: 2, At: at(1, 9, 10)},
		),
	})

	if report.Appointments != 1 || len(report.Dropped) != 1 {
		t.Fatalf("report = %+v", report)
	}
	dropped := report.Dropped[0]
	if dropped.Appointment.ID != 2 || dropped.BlockingID != 1 || dropped.EmployeeID != 1 {
		t.Fatalf("dropped = %+v", dropped)
	}
}

func TestLoad_DuplicateIDsAreRekeyed(t *testing.T) {
	r := New()
	report := r.Load([]LoadRecord{
		record(1, "Reyes", "Ana", models.Appointment{ID: 1, At: at(1, 9, 0)}),
		record(1, "Cruz", "Ben", models.Appointment{ID: 1, At: at(1, 9, 0)}),
	})

	if len(report.Rekeyed) != 2 {
		t.Fatalf("rekeyed = %+v", report.Rekeyed)
	}
	if r.Directory().Len() != 2 {
		t.Fatal("both employees should be loaded")
	}

	seen := map[int]bool{}
	for _, s := range r.Directory().Snapshot() {
		if seen[s.Employee.ID] {
			t.Fatalf("duplicate employee id %d after load", s.Employee.ID)
		}
		seen[s.Employee.ID] = true
	}
	ownerA, okA := r.Directory().FindOwnerOf(1)
	ownerB, okB := r.Directory().FindOwnerOf(report.Rekeyed[1].NewID)
	if !okA || !okB || ownerA.ID == ownerB.ID {
		t.Fatalf("appointments not distinct: %v %v", ownerA, ownerB)
	}
}

func TestLoad_ReplacesExistingContents(t *testing.T) {
	r := New()
	r.Hire(newEmployee("Old", "Timer"))
	r.Load(nil)
	if r.Directory().Len() != 0 {
		t.Fatal("Load should replace contents")
	}
	if emp := r.Hire(newEmployee("New", "Hire")); emp.ID != 1 {
		t.Fatalf("id = %d, want 1", emp.ID)
	}
}
