package api

import (
	"fmt"
	"strings"
	"time"
)

// localTimeLayout is the backend's date-time wire format: local wall clock,
// no zone designator.
const localTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a time.Time that marshals as the backend's zone-less local
// date-time format.
type LocalTime struct {
	time.Time
}

// NewLocalTime wraps a time.Time for wire transport.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

// MarshalJSON formats the instant as "YYYY-MM-DDTHH:MM:SS".
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localTimeLayout) + `"`), nil
}

// UnmarshalJSON parses the backend's local date-time format, tolerating an
// optional fractional-seconds suffix.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	parsed, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parsing date-time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Barber is a staff member who can be booked.
type Barber struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad"`
	Phone     string `json:"telefono"`
	Active    bool   `json:"activo"`
}

// Customer is a registered client of the shop.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Document string `json:"documento"`
	Phone    string `json:"telefono"`
}

// Service is a bookable service with its price.
type Service struct {
	ID     int64   `json:"id"`
	Name   string  `json:"nombre"`
	Price  float64 `json:"precio"`
	Active bool    `json:"activo"`
}

// Appointment is a booked interval. List endpoints embed the related
// entities; the day-agenda endpoint may return only the times.
type Appointment struct {
	ID       int64     `json:"id"`
	Start    LocalTime `json:"fechaHoraInicio"`
	End      LocalTime `json:"fechaHoraFin"`
	Paid     bool      `json:"pagado"`
	Customer *Customer `json:"cliente,omitempty"`
	Barber   *Barber   `json:"barbero,omitempty"`
	Service  *Service  `json:"servicio,omitempty"`
}

// Finished reports whether the appointment has already ended.
func (a Appointment) Finished(now time.Time) bool {
	return a.End.Before(now)
}

// CreateBarberRequest is the payload for registering a barber.
type CreateBarberRequest struct {
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad,omitempty"`
	Phone     string `json:"telefono,omitempty"`
}

// CreateCustomerRequest is the payload for registering a customer.
// All three fields are required by the backend.
type CreateCustomerRequest struct {
	Name     string `json:"nombre"`
	Document string `json:"documento"`
	Phone    string `json:"telefono"`
}

// CreateServiceRequest is the payload for registering a service.
type CreateServiceRequest struct {
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

// UpdateServiceRequest is the payload for a partial service update.
// Nil fields are left untouched by the backend.
type UpdateServiceRequest struct {
	ID    int64    `json:"id"`
	Name  *string  `json:"nombre,omitempty"`
	Price *float64 `json:"precio,omitempty"`
}

// WorkingHours is one weekday availability window for a barber.
// Weekday is ISO: 1=Monday .. 7=Sunday.
type WorkingHours struct {
	Weekday int    `json:"diaSemana"`
	Start   string `json:"horaInicio"` // "HH:MM"
	End     string `json:"horaFin"`    // "HH:MM"
}

// AvailabilityUpdate replaces a barber's full weekly availability.
type AvailabilityUpdate struct {
	BarberID int64          `json:"idBarbero"`
	Hours    []WorkingHours `json:"horariosDisponibles"`
}

// CreateAppointmentRequest is the payload for booking an appointment.
type CreateAppointmentRequest struct {
	CustomerID int64     `json:"clienteId"`
	BarberID   int64     `json:"barberoId"`
	ServiceID  int64     `json:"servicioId"`
	Start      LocalTime `json:"fechaHoraInicio"`
	End        LocalTime `json:"fechaHoraFin"`
}
