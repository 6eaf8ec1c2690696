package repository

import (
	"path/filepath"
	"testing"

	"spa-roster/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newActivityRepo(t *testing.T) *GormActivityRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "activity.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewGormActivityRepository(db, quietLogger())
	if err != nil {
		t.Fatalf("NewGormActivityRepository: %v", err)
	}
	return repo
}

func seedActivity(t *testing.T, repo *GormActivityRepository, entries ...models.ActivityEntry) {
	t.Helper()
	for i := range entries {
		e := entries[i]
		if e.SessionID == "" {
			e.SessionID = "session-1"
		}
		if err := repo.Create(&e); err != nil {
			t.Fatalf("Create(%s): %v", e.Kind, err)
		}
		if e.ID == 0 {
			t.Fatalf("Create(%s) did not assign an id", e.Kind)
		}
	}
}

func TestGormActivityRepository_CreateRejectsEmptyKind(t *testing.T) {
	repo := newActivityRepo(t)

	if err := repo.Create(&models.ActivityEntry{SessionID: "session-1"}); err == nil {
		t.Fatal("expected error for empty kind")
	}

	recent, err := repo.GetRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Fatalf("rejected entry was stored: %+v", recent)
	}
}

func TestGormActivityRepository_Queries(t *testing.T) {
	repo := newActivityRepo(t)
	seedActivity(t, repo,
		models.ActivityEntry{Kind: models.ActivityHire, EmployeeID: 1},
		models.ActivityEntry{Kind: models.ActivityBook, EmployeeID: 1, AppointmentID: 3},
		models.ActivityEntry{Kind: models.ActivityBook, EmployeeID: 1, AppointmentID: 4},
		models.ActivityEntry{Kind: models.ActivityReschedule, EmployeeID: 1, AppointmentID: 5, PreviousID: 3},
		models.ActivityEntry{Kind: models.ActivityCancel, EmployeeID: 1, AppointmentID: 5},
	)

	t.Run("recent is newest first and limited", func(t *testing.T) {
		cases := []struct {
			limit int
			want  []string
		}{
			{1, []string{models.ActivityCancel}},
			{3, []string{models.ActivityCancel, models.ActivityReschedule, models.ActivityBook}},
			{10, []string{models.ActivityCancel, models.ActivityReschedule, models.ActivityBook, models.ActivityBook, models.ActivityHire}},
		}
		for _, tc := range cases {
			recent, err := repo.GetRecent(tc.limit)
			if err != nil {
				t.Fatal(err)
			}
			if len(recent) != len(tc.want) {
				t.Fatalf("GetRecent(%d) returned %d entries, want %d", tc.limit, len(recent), len(tc.want))
			}
			for i, e := range recent {
				if e.Kind != tc.want[i] {
					t.Fatalf("GetRecent(%d)[%d] = %s, want %s", tc.limit, i, e.Kind, tc.want[i])
				}
			}
		}
	})

	t.Run("appointment history is oldest first and follows reschedules", func(t *testing.T) {
		cases := []struct {
			appointmentID int
			want          []string
		}{
			{3, []string{models.ActivityBook, models.ActivityReschedule}},
			{4, []string{models.ActivityBook}},
			{5, []string{models.ActivityReschedule, models.ActivityCancel}},
			{99, nil},
		}
		for _, tc := range cases {
			history, err := repo.GetByAppointment(tc.appointmentID)
			if err != nil {
				t.Fatal(err)
			}
			if len(history) != len(tc.want) {
				t.Fatalf("GetByAppointment(%d) returned %d entries, want %d", tc.appointmentID, len(history), len(tc.want))
			}
			for i, e := range history {
				if e.Kind != tc.want[i] {
					t.Fatalf("GetByAppointment(%d)[%d] = %s, want %s", tc.appointmentID, i, e.Kind, tc.want[i])
				}
			}
		}
	})

	t.Run("counts by kind", func(t *testing.T) {
		counts, err := repo.CountByKind()
		if err != nil {
			t.Fatal(err)
		}
		want := map[string]int64{
			models.ActivityHire:       1,
			models.ActivityBook:       2,
			models.ActivityReschedule: 1,
			models.ActivityCancel:     1,
		}
		if len(counts) != len(want) {
			t.Fatalf("counts = %v, want %v", counts, want)
		}
		for kind, n := range want {
			if counts[kind] != n {
				t.Fatalf("counts[%s] = %d, want %d", kind, counts[kind], n)
			}
		}
	})
}
