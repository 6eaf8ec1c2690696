package models

import "time"

// ActivityEntry запись журнала действий с ростером
type ActivityEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SessionID     string    `gorm:"type:varchar(36);not null;index" json:"session_id"`
	Kind          string    `gorm:"type:varchar(32);not null;index" json:"kind"`
	EmployeeID    int       `gorm:"index" json:"employee_id"`
	AppointmentID int       `gorm:"index" json:"appointment_id"`
	PreviousID    int       `gorm:"index" json:"previous_id"` // прежний id при переносе
	Details       string    `json:"details"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}

const (
	ActivityHire               = "hire"
	ActivityEmployeeUpdate     = "employee_update"
	ActivityDismiss            = "dismiss"
	ActivityDismissAll         = "dismiss_all"
	ActivityBook               = "book"
	ActivityBookRejected       = "book_rejected"
	ActivityReschedule         = "reschedule"
	ActivityRescheduleRejected = "reschedule_rejected"
	ActivityCancel             = "cancel"
	ActivityLoadConflict       = "load_conflict"
	ActivityLoadRekey          = "load_rekey"
	ActivitySave               = "save"
)
