package handler

import (
	"fmt"

	"spa-roster/internal/models"
	"spa-roster/internal/roster"
)

func (h *Handler) bookAppointment() error {
	employeeID, err := h.prompt.Int("Employee ID No.: ")
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(employeeID)
	if err != nil {
		h.report(err)
		return nil
	}
	fmt.Fprintf(h.out, "Booking with %s\n", emp.FullName())

	date, err := h.prompt.Date("Date (mm/dd/yy): ")
	if err != nil {
		return err
	}
	hour, minute, err := h.prompt.Time("Time (hh:mm, 24-hr): ")
	if err != nil {
		return err
	}

	appointment, err := h.appointments.Book(employeeID, models.NewScheduleKey(date, hour, minute))
	if err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprintf(h.out, "Appointment booked. Assigned ID No. %d\n", appointment.ID)
	return nil
}

func (h *Handler) editAppointmentDate() error {
	appointment, ok, err := h.pickAppointment()
	if err != nil || !ok {
		return err
	}

	date, err := h.prompt.Date("New date (mm/dd/yy): ")
	if err != nil {
		return err
	}

	h.printRescheduled(h.appointments.MoveToDate(appointment.ID, date))
	return nil
}

func (h *Handler) editAppointmentTime() error {
	appointment, ok, err := h.pickAppointment()
	if err != nil || !ok {
		return err
	}

	hour, minute, err := h.prompt.Time("New time (hh:mm, 24-hr): ")
	if err != nil {
		return err
	}

	h.printRescheduled(h.appointments.MoveToTime(appointment.ID, hour, minute))
	return nil
}

func (h *Handler) editAppointmentEmployee() error {
	appointment, ok, err := h.pickAppointment()
	if err != nil || !ok {
		return err
	}

	employeeID, err := h.prompt.Int("New employee ID No.: ")
	if err != nil {
		return err
	}

	h.printRescheduled(h.appointments.Reassign(appointment.ID, employeeID))
	return nil
}

func (h *Handler) cancelAppointment() error {
	appointment, ok, err := h.pickAppointment()
	if err != nil || !ok {
		return err
	}

	confirmed, err := h.prompt.Confirm("Cancel this appointment? (Y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(h.out, "Appointment kept.")
		return nil
	}

	if _, _, err := h.appointments.Cancel(appointment.ID); err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprintln(h.out, "Appointment cancelled.")
	return nil
}

// pickAppointment спрашивает id и показывает найденную запись.
// ok=false, если записи нет (сообщение уже выведено).
func (h *Handler) pickAppointment() (models.Appointment, bool, error) {
	id, err := h.prompt.Int("Appointment ID No.: ")
	if err != nil {
		return models.Appointment{}, false, err
	}

	emp, appointment, err := h.appointments.Find(id)
	if err != nil {
		h.report(err)
		return models.Appointment{}, false, nil
	}

	fmt.Fprintf(h.out, "%s (with %s)\n", appointment.FormatLine(), emp.FullName())
	return appointment, true, nil
}

func (h *Handler) printRescheduled(result roster.Rescheduled, err error) {
	if err != nil {
		h.report(err)
		fmt.Fprintln(h.out, "Appointment was not changed.")
		return
	}

	fmt.Fprintf(h.out, "Appointment rescheduled. New ID No. %d (was %d)\n", result.Current.ID, result.Previous.ID)
}
