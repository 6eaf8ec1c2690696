package handler

import (
	"errors"
	"fmt"
)

type Command int

const (
	CmdEmployees Command = iota + 1
	CmdAppointments
	CmdActivity
	CmdSave
	CmdExit
	CmdBack

	CmdAddEmployee
	CmdEditEmployee
	CmdDeleteEmployee
	CmdDeleteAllEmployees
	CmdViewEmployee
	CmdViewAllEmployees
	CmdViewByPosition

	CmdBookAppointment
	CmdEditAppointmentDate
	CmdEditAppointmentTime
	CmdEditAppointmentEmployee
	CmdCancelAppointment

	CmdRecentActivity
	CmdAppointmentHistory
)

// errExit пункт Exit главного меню
var errExit = errors.New("exit requested")

type menuItem struct {
	cmd   Command
	label string
}

type menu struct {
	title string
	items []menuItem
}

var mainMenu = menu{
	title: "SPA EMPLOYEE SCHEDULER",
	items: []menuItem{
		{CmdEmployees, "Employees"},
		{CmdAppointments, "Appointments"},
		{CmdActivity, "Activity log"},
		{CmdSave, "Save"},
		{CmdExit, "Exit"},
	},
}

var employeeMenu = menu{
	title: "EMPLOYEES",
	items: []menuItem{
		{CmdAddEmployee, "Add employee"},
		{CmdEditEmployee, "Edit employee"},
		{CmdDeleteEmployee, "Delete employee"},
		{CmdDeleteAllEmployees, "Delete all employees"},
		{CmdViewEmployee, "View employee"},
		{CmdViewAllEmployees, "View all employees"},
		{CmdViewByPosition, "View employees by position"},
		{CmdBack, "Back"},
	},
}

var appointmentMenu = menu{
	title: "APPOINTMENTS",
	items: []menuItem{
		{CmdBookAppointment, "Book appointment"},
		{CmdEditAppointmentDate, "Change appointment date"},
		{CmdEditAppointmentTime, "Change appointment time"},
		{CmdEditAppointmentEmployee, "Change appointment employee"},
		{CmdCancelAppointment, "Cancel appointment"},
		{CmdBack, "Back"},
	},
}

var activityMenu = menu{
	title: "ACTIVITY LOG",
	items: []menuItem{
		{CmdRecentActivity, "Recent activity"},
		{CmdAppointmentHistory, "Appointment history"},
		{CmdBack, "Back"},
	},
}

// registerCommands заполняет таблицу обработчиков
func (h *Handler) registerCommands() {
	h.commands = map[Command]func() error{
		CmdEmployees:    func() error { return h.runMenu(employeeMenu) },
		CmdAppointments: func() error { return h.runMenu(appointmentMenu) },
		CmdActivity:     func() error { return h.runMenu(activityMenu) },
		CmdSave:         h.save,

		CmdAddEmployee:        h.addEmployee,
		CmdEditEmployee:       h.editEmployee,
		CmdDeleteEmployee:     h.deleteEmployee,
		CmdDeleteAllEmployees: h.deleteAllEmployees,
		CmdViewEmployee:       h.viewEmployee,
		CmdViewAllEmployees:   h.viewAllEmployees,
		CmdViewByPosition:     h.viewByPosition,

		CmdBookAppointment:         h.bookAppointment,
		CmdEditAppointmentDate:     h.editAppointmentDate,
		CmdEditAppointmentTime:     h.editAppointmentTime,
		CmdEditAppointmentEmployee: h.editAppointmentEmployee,
		CmdCancelAppointment:       h.cancelAppointment,

		CmdRecentActivity:     h.showRecentActivity,
		CmdAppointmentHistory: h.showAppointmentHistory,
	}
}

// runMenu показывает меню, пока пользователь не выберет Back или Exit
func (h *Handler) runMenu(m menu) error {
	for {
		fmt.Fprintf(h.out, "\n-------------------------\n%s\n-------------------------\n", m.title)
		for i, item := range m.items {
			fmt.Fprintf(h.out, "%d. %s\n", i+1, item.label)
		}

		choice, err := h.prompt.Int("Enter choice: ")
		if err != nil {
			return err
		}
		if choice < 1 || choice > len(m.items) {
			fmt.Fprintln(h.out, "Invalid choice!")
			continue
		}

		cmd := m.items[choice-1].cmd
		switch cmd {
		case CmdBack:
			return nil
		case CmdExit:
			return errExit
		}

		run, ok := h.commands[cmd]
		if !ok {
			h.logger.WithField("command", cmd).Error("No handler registered for command")
			continue
		}
		if err := run(); err != nil {
			return err
		}
	}
}
