package handler

import (
	"errors"
	"fmt"
	"io"

	"spa-roster/internal/roster"
	"spa-roster/internal/service"

	"github.com/sirupsen/logrus"
)

// Handler консольный интерфейс ростера
type Handler struct {
	prompt       *Prompter
	out          io.Writer
	employees    *service.EmployeeService
	appointments *service.AppointmentService
	activity     *service.ActivityService
	storage      *service.StorageService
	commands     map[Command]func() error
	logger       *logrus.Logger
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	employees *service.EmployeeService,
	appointments *service.AppointmentService,
	activity *service.ActivityService,
	storage *service.StorageService,
	logger *logrus.Logger,
) *Handler {
	h := &Handler{
		prompt:       NewPrompter(in, out),
		out:          out,
		employees:    employees,
		appointments: appointments,
		activity:     activity,
		storage:      storage,
		logger:       logger,
	}
	h.registerCommands()
	return h
}

// Run работает до пункта Exit или конца ввода; в обоих случаях возвращает nil
func (h *Handler) Run() error {
	err := h.runMenu(mainMenu)

	switch {
	case err == nil, errors.Is(err, errExit):
		h.logger.Debug("Console session ended by user")
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(h.out)
		h.logger.Debug("Console input closed")
		return nil
	default:
		h.logger.WithError(err).Error("Console session failed")
		return err
	}
}

func (h *Handler) save() error {
	if err := h.storage.Save(); err != nil {
		fmt.Fprintf(h.out, "Failed to save: %v\n", err)
		return nil
	}
	fmt.Fprintln(h.out, "Roster saved.")
	return nil
}

// report печатает ошибку ростера понятным сообщением
func (h *Handler) report(err error) {
	var conflict *roster.ConflictError

	switch {
	case errors.As(err, &conflict):
		fmt.Fprintf(h.out, "Proposed appointment conflicts with existing appointment: ID No. %d (%s)\n", conflict.BlockingID, conflict.BlockingAt)
	case errors.Is(err, roster.ErrEmployeeNotFound):
		fmt.Fprintln(h.out, "Employee does not exist!")
	case errors.Is(err, roster.ErrAppointmentNotFound):
		fmt.Fprintln(h.out, "Appointment does not exist!")
	default:
		fmt.Fprintf(h.out, "Error: %v\n", err)
	}
}
