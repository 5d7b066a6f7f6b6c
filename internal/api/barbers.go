package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListBarbers returns every registered barber, active and inactive.
func (c *Client) ListBarbers(ctx context.Context) ([]Barber, error) {
	var barbers []Barber
	if err := c.get(ctx, "/barberos", &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// CreateBarber registers a new barber and returns it with its assigned ID.
func (c *Client) CreateBarber(ctx context.Context, req CreateBarberRequest) (Barber, error) {
	var barber Barber
	if err := c.send(ctx, http.MethodPost, "/barberos", req, &barber); err != nil {
		return Barber{}, err
	}
	return barber, nil
}

// DeleteBarber removes a barber.
func (c *Client) DeleteBarber(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/barberos/%d", id), nil, nil)
}

// BarberHours returns a barber's weekly availability windows.
func (c *Client) BarberHours(ctx context.Context, id int64) ([]WorkingHours, error) {
	var hours []WorkingHours
	if err := c.get(ctx, fmt.Sprintf("/barberos/%d/horarios", id), &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

// AddWorkingHours appends one weekly availability window for a barber.
func (c *Client) AddWorkingHours(ctx context.Context, barberID int64, h WorkingHours) (WorkingHours, error) {
	var out WorkingHours
	path := fmt.Sprintf("/barberos/%d/horarios", barberID)
	if err := c.send(ctx, http.MethodPost, path, h, &out); err != nil {
		return WorkingHours{}, err
	}
	return out, nil
}

// SetAvailability replaces a barber's full weekly availability.
func (c *Client) SetAvailability(ctx context.Context, upd AvailabilityUpdate) error {
	return c.send(ctx, http.MethodPut, "/barberos/disponibilidad", upd, nil)
}

// DayAgenda returns a barber's appointments for one calendar day.
// The day is formatted YYYY-MM-DD.
func (c *Client) DayAgenda(ctx context.Context, barberID int64, day string) ([]Appointment, error) {
	var appts []Appointment
	path := fmt.Sprintf("/barberos/%d/agenda?dia=%s", barberID, day)
	if err := c.get(ctx, path, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
