package service

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"
)

func newEmployeeFixture() (*EmployeeService, *AppointmentService, *fakeActivityRepo) {
	repo := &fakeActivityRepo{}
	logger := quietLogger()
	activity := NewActivityService(repo, logger)
	r := NewSharedRoster(roster.New())
	return NewEmployeeService(r, activity, logger), NewAppointmentService(r, activity, nil, logger), repo
}

func TestEmployeeService_HireAssignsSequentialIDs(t *testing.T) {
	employees, _, journal := newEmployeeFixture()

	doe, err := employees.Hire("Doe", "Jane", 31, models.PositionMassageTherapist, hiredOn)
	if err != nil {
		t.Fatal(err)
	}
	abad, err := employees.Hire("Abad", "Ana", 25, models.PositionNailTechnician, hiredOn)
	if err != nil {
		t.Fatal(err)
	}

	if doe.ID != 1 || abad.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", doe.ID, abad.ID)
	}

	var names []string
	for _, emp := range employees.All() {
		names = append(names, emp.LastName)
	}
	if !slices.Equal(names, []string{"Abad", "Doe"}) {
		t.Fatalf("directory order = %v", names)
	}

	if got := journal.kinds(); !slices.Equal(got, []string{models.ActivityHire, models.ActivityHire}) {
		t.Fatalf("journal = %v", got)
	}
}

func TestEmployeeService_HireRejectsInvalid(t *testing.T) {
	employees, _, _ := newEmployeeFixture()

	if _, err := employees.Hire("", "Jane", 31, models.PositionMassageTherapist, hiredOn); err == nil {
		t.Fatal("expected error for empty last name")
	}
	if len(employees.All()) != 0 {
		t.Fatal("invalid employee must not be added")
	}
}

func TestEmployeeService_DismissReportsDiscardedAppointments(t *testing.T) {
	employees, appointments, _ := newEmployeeFixture()

	emp, _ := employees.Hire("Doe", "Jane", 31, models.PositionMassageTherapist, hiredOn)
	for _, k := range []models.ScheduleKey{key(1, 9, 0), key(1, 10, 0)} {
		if _, err := appointments.Book(emp.ID, k); err != nil {
			t.Fatal(err)
		}
	}

	_, discarded, err := employees.Dismiss(emp.ID)
	if err != nil {
		t.Fatal(err)
	}
	if discarded != 2 {
		t.Fatalf("discarded = %d, want 2", discarded)
	}

	if _, err := employees.Get(emp.ID); !errors.Is(err, roster.ErrEmployeeNotFound) {
		t.Fatalf("Get after dismiss err = %v", err)
	}
	if _, _, err := employees.Dismiss(emp.ID); !errors.Is(err, roster.ErrEmployeeNotFound) {
		t.Fatalf("second Dismiss err = %v", err)
	}
}

func TestEmployeeService_ByPositionAndFormat(t *testing.T) {
	employees, appointments, _ := newEmployeeFixture()

	doe, _ := employees.Hire("Doe", "Jane", 31, models.PositionMassageTherapist, hiredOn)
	employees.Hire("Roe", "Rick", 40, models.PositionSpaReceptionist, hiredOn)

	got := employees.ByPosition(models.PositionMassageTherapist)
	if len(got) != 1 || got[0].ID != doe.ID {
		t.Fatalf("ByPosition = %+v", got)
	}

	if _, err := appointments.Book(doe.ID, key(1, 9, 0)); err != nil {
		t.Fatal(err)
	}
	list, err := employees.Appointments(doe.ID)
	if err != nil {
		t.Fatal(err)
	}
	details := employees.FormatEmployee(doe, list)
	if !strings.Contains(details, "ID No.: 1 | Schedule: 05/01/24 at 09:00AM") {
		t.Fatalf("details missing appointment line:\n%s", details)
	}

	empty := employees.FormatList("EMPLOYEES", employees.ByPosition(models.PositionHairStylist))
	if !strings.Contains(empty, "No employees found.") {
		t.Fatalf("empty list:\n%s", empty)
	}
}

func TestEmployeeService_UpdateRepositions(t *testing.T) {
	employees, _, journal := newEmployeeFixture()

	doe, _ := employees.Hire("Doe", "Jane", 31, models.PositionMassageTherapist, hiredOn)
	employees.Hire("Moss", "Kim", 28, models.PositionMassageTherapist, hiredOn)

	doe.LastName = "Ziegler"
	if err := employees.Update(doe); err != nil {
		t.Fatal(err)
	}

	all := employees.All()
	if all[len(all)-1].ID != doe.ID {
		t.Fatalf("renamed employee should sort last, got %+v", all)
	}
	if journal.entries[len(journal.entries)-1].Kind != models.ActivityEmployeeUpdate {
		t.Fatalf("journal = %v", journal.kinds())
	}
}

func TestEmployeeService_DismissAll(t *testing.T) {
	employees, _, journal := newEmployeeFixture()

	employees.Hire("Doe", "Jane", 31, models.PositionMassageTherapist, hiredOn)
	employees.Hire("Roe", "Rick", 40, models.PositionSpaReceptionist, hiredOn)

	if n := employees.DismissAll(); n != 2 {
		t.Fatalf("DismissAll = %d, want 2", n)
	}
	if len(employees.All()) != 0 {
		t.Fatal("directory should be empty")
	}
	next, _ := employees.Hire("New", "Nia", 22, models.PositionAesthetician, hiredOn)
	if next.ID != 3 {
		t.Fatalf("ids must not be reused, got %d", next.ID)
	}
	if !slices.Contains(journal.kinds(), models.ActivityDismissAll) {
		t.Fatalf("journal = %v", journal.kinds())
	}
}
