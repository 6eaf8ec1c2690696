package roster

import (
	"spa-roster/internal/models"
)

// LoadRecord сотрудник и его записи в порядке файла
type LoadRecord struct {
	Employee     models.Employee
	Appointments []models.Appointment
}

const (
	IssueConflict = "conflict"
	IssueRekey    = "rekey"
)

// LoadIssue запись, которую не удалось загрузить как есть
type LoadIssue struct {
	Kind        string
	EmployeeID  int
	Appointment models.Appointment
	// BlockingID id записи, из-за которой Appointment не попала в ledger (для IssueConflict)
	BlockingID int
	// OldID/NewID для IssueRekey; для сотрудника Appointment пустая
	OldID int
	NewID int
}

type LoadReport struct {
	Employees    int
	Appointments int
	Dropped      []LoadIssue
	Rekeyed      []LoadIssue
}

// Load заменяет содержимое ростера загруженными данными.
// Все записи проходят через те же Insert, что и во время работы, поэтому
// порядок восстанавливается, а конфликтующие записи попадают в Dropped.
// Повторяющиеся id (файлы старых сессий) получают новые id и попадают в Rekeyed.
func (r *Roster) Load(records []LoadRecord) LoadReport {
	r.dir.RemoveAll()

	maxEmployeeID, maxAppointmentID := 0, 0
	for _, rec := range records {
		if rec.Employee.ID > maxEmployeeID {
			maxEmployeeID = rec.Employee.ID
		}
		for _, a := range rec.Appointments {
			if a.ID > maxAppointmentID {
				maxAppointmentID = a.ID
			}
		}
	}

	r.employeeIDs = NewIDAllocator(max(len(records), maxEmployeeID))
	r.appointmentIDs = NewIDAllocator(maxAppointmentID)

	var report LoadReport
	seenEmployees := make(map[int]bool, len(records))
	seenAppointments := make(map[int]bool)

	for _, rec := range records {
		emp := rec.Employee
		if emp.ID <= 0 || seenEmployees[emp.ID] {
			oldID := emp.ID
			emp.ID = r.employeeIDs.Next()
			report.Rekeyed = append(report.Rekeyed, LoadIssue{
				Kind:       IssueRekey,
				EmployeeID: emp.ID,
				OldID:      oldID,
				NewID:      emp.ID,
			})
		}
		seenEmployees[emp.ID] = true
		r.dir.Insert(emp)
		report.Employees++

		ledger, _ := r.dir.LedgerOf(emp.ID)
		for _, a := range rec.Appointments {
			if blocking, conflict := ledger.Conflict(a.At); conflict {
				report.Dropped = append(report.Dropped, LoadIssue{
					Kind:        IssueConflict,
					EmployeeID:  emp.ID,
					Appointment: a,
					BlockingID:  blocking.ID,
				})
				continue
			}
			if a.ID <= 0 || seenAppointments[a.ID] {
				oldID := a.ID
				a.ID = r.appointmentIDs.Next()
				report.Rekeyed = append(report.Rekeyed, LoadIssue{
					Kind:        IssueRekey,
					EmployeeID:  emp.ID,
					Appointment: a,
					OldID:       oldID,
					NewID:       a.ID,
				})
			}
			seenAppointments[a.ID] = true
			if err := ledger.Insert(a); err != nil {
				continue
			}
			report.Appointments++
		}
	}

	return report
}
