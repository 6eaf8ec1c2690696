package roster

import (
	"slices"

	"spa-roster/internal/models"
)

type staffEntry struct {
	employee models.Employee
	ledger   *Ledger
}

// StaffSchedule сотрудник вместе со своими записями (для сохранения и вывода)
type StaffSchedule struct {
	Employee     models.Employee
	Appointments []models.Appointment
}

// Directory сотрудники в порядке (фамилия, имя). Каждый владеет своим Ledger.
type Directory struct {
	staff []*staffEntry
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Insert вставляет сотрудника перед первой записью, которая не меньше его по имени.
// Одинаковые имена допускаются и оказываются рядом.
func (d *Directory) Insert(emp models.Employee) {
	d.insertEntry(&staffEntry{employee: emp, ledger: NewLedger()})
}

func (d *Directory) insertEntry(e *staffEntry) {
	i := slices.IndexFunc(d.staff, func(other *staffEntry) bool {
		return e.employee.CompareName(other.employee) <= 0
	})
	if i < 0 {
		i = len(d.staff)
	}
	d.staff = slices.Insert(d.staff, i, e)
}

func (d *Directory) Find(id int) (models.Employee, bool) {
	e := d.entry(id)
	if e == nil {
		return models.Employee{}, false
	}
	return e.employee, true
}

// LedgerOf возвращает записи сотрудника
func (d *Directory) LedgerOf(id int) (*Ledger, bool) {
	e := d.entry(id)
	if e == nil {
		return nil, false
	}
	return e.ledger, true
}

// FindOwnerOf ищет сотрудника, у которого есть запись appointmentID.
// Идентификаторы записей уникальны, поэтому первое совпадение единственное.
func (d *Directory) FindOwnerOf(appointmentID int) (models.Employee, bool) {
	e := d.ownerEntry(appointmentID)
	if e == nil {
		return models.Employee{}, false
	}
	return e.employee, true
}

// Remove удаляет сотрудника вместе со всеми его записями
func (d *Directory) Remove(id int) (models.Employee, error) {
	i := d.index(id)
	if i < 0 {
		return models.Employee{}, ErrEmployeeNotFound
	}
	removed := d.staff[i].employee
	d.staff = slices.Delete(d.staff, i, i+1)
	return removed, nil
}

// RemoveAll очищает справочник, возвращает количество удалённых
func (d *Directory) RemoveAll() int {
	n := len(d.staff)
	d.staff = nil
	return n
}

// Update меняет данные сотрудника, сохраняя id и записи.
// Если изменилось имя, сотрудник переставляется на новое место.
func (d *Directory) Update(emp models.Employee) error {
	i := d.index(emp.ID)
	if i < 0 {
		return ErrEmployeeNotFound
	}
	e := d.staff[i]
	nameChanged := e.employee.CompareName(emp) != 0
	e.employee = emp
	if nameChanged {
		d.staff = slices.Delete(d.staff, i, i+1)
		d.insertEntry(e)
	}
	return nil
}

func (d *Directory) All() []models.Employee {
	result := make([]models.Employee, 0, len(d.staff))
	for _, e := range d.staff {
		result = append(result, e.employee)
	}
	return result
}

// ByPosition сотрудники с точно совпадающей должностью, в порядке справочника
func (d *Directory) ByPosition(p models.Position) []models.Employee {
	var result []models.Employee
	for _, e := range d.staff {
		if e.employee.Position == p {
			result = append(result, e.employee)
		}
	}
	return result
}

// Snapshot полный упорядоченный обход справочника и записей
func (d *Directory) Snapshot() []StaffSchedule {
	result := make([]StaffSchedule, 0, len(d.staff))
	for _, e := range d.staff {
		result = append(result, StaffSchedule{
			Employee:     e.employee,
			Appointments: e.ledger.All(),
		})
	}
	return result
}

func (d *Directory) Len() int {
	return len(d.staff)
}

func (d *Directory) MaxEmployeeID() int {
	maxID := 0
	for _, e := range d.staff {
		if e.employee.ID > maxID {
			maxID = e.employee.ID
		}
	}
	return maxID
}

func (d *Directory) MaxAppointmentID() int {
	maxID := 0
	for _, e := range d.staff {
		if id := e.ledger.MaxID(); id > maxID {
			maxID = id
		}
	}
	return maxID
}

func (d *Directory) entry(id int) *staffEntry {
	i := d.index(id)
	if i < 0 {
		return nil
	}
	return d.staff[i]
}

func (d *Directory) index(id int) int {
	return slices.IndexFunc(d.staff, func(e *staffEntry) bool {
		return e.employee.ID == id
	})
}

func (d *Directory) ownerEntry(appointmentID int) *staffEntry {
	for _, e := range d.staff {
		if _, ok := e.ledger.Find(appointmentID); ok {
			return e
		}
	}
	return nil
}
