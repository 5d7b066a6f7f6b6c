package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListAppointments returns every appointment with its related entities.
func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var appts []Appointment
	if err := c.get(ctx, "/citas", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CreateAppointment books an appointment. A booking collision surfaces as
// ErrConflict so callers can keep the pending details alive for a retry.
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (Appointment, error) {
	var appt Appointment
	if err := c.send(ctx, http.MethodPost, "/citas", req, &appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}

// DeleteAppointment cancels an appointment.
func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/citas/%d", id), nil, nil)
}

// SetPaid marks an appointment as paid or unpaid.
func (c *Client) SetPaid(ctx context.Context, id int64, paid bool) (Appointment, error) {
	var appt Appointment
	path := fmt.Sprintf("/citas/%d/pagado?pagado=%t", id, paid)
	if err := c.send(ctx, http.MethodPut, path, nil, &appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}
