package handler

import (
	"fmt"
)

const recentActivityLimit = 20

func (h *Handler) showRecentActivity() error {
	text, err := h.activity.FormatRecent(recentActivityLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read activity log")
		fmt.Fprintln(h.out, "Failed to read activity log.")
		return nil
	}

	fmt.Fprintln(h.out, text)
	return nil
}

func (h *Handler) showAppointmentHistory() error {
	id, err := h.prompt.Int("Appointment ID No.: ")
	if err != nil {
		return err
	}

	text, err := h.activity.FormatHistory(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read appointment history")
		fmt.Fprintln(h.out, "Failed to read activity log.")
		return nil
	}

	fmt.Fprintln(h.out, text)
	return nil
}
