package roster

import (
	"slices"

	"spa-roster/internal/models"
)

// Ledger записи одного сотрудника в порядке возрастания даты и времени.
// Соседние записи всегда отстоят друг от друга минимум на 30 минут.
type Ledger struct {
	items []models.Appointment
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// position индекс первой записи, которую кандидат не опережает на 30+ минут
func (l *Ledger) position(at models.ScheduleKey) int {
	for i, a := range l.items {
		if at.DistanceMinutes(a.At) < models.ConflictWindowMinutes {
			return i
		}
	}
	return len(l.items)
}

// Conflict возвращает запись, мешающую поставить кандидата на время at.
// Достаточно проверить запись в точке вставки: предыдущая раньше минимум на 30 минут,
// а последующие ещё дальше, потому что список отсортирован.
func (l *Ledger) Conflict(at models.ScheduleKey) (models.Appointment, bool) {
	i := l.position(at)
	if i < len(l.items) && at.WithinConflictWindow(l.items[i].At) {
		return l.items[i], true
	}
	return models.Appointment{}, false
}

// Insert ставит запись на её место по времени.
// При конфликте возвращает *ConflictError и не меняет ledger.
func (l *Ledger) Insert(a models.Appointment) error {
	i := l.position(a.At)
	if i < len(l.items) && a.At.WithinConflictWindow(l.items[i].At) {
		return &ConflictError{BlockingID: l.items[i].ID, BlockingAt: l.items[i].At}
	}
	l.items = slices.Insert(l.items, i, a)
	return nil
}

func (l *Ledger) Remove(id int) (models.Appointment, error) {
	i := l.index(id)
	if i < 0 {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	removed := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return removed, nil
}

func (l *Ledger) Find(id int) (models.Appointment, bool) {
	i := l.index(id)
	if i < 0 {
		return models.Appointment{}, false
	}
	return l.items[i], true
}

// All копия записей в порядке возрастания
func (l *Ledger) All() []models.Appointment {
	return slices.Clone(l.items)
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// MaxID наибольший идентификатор записи, 0 если записей нет
func (l *Ledger) MaxID() int {
	maxID := 0
	for _, a := range l.items {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID
}

func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.items, func(a models.Appointment) bool {
		return a.ID == id
	})
}
