package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestListBarbers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/barberos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"nombre":"Luis","especialidad":"Fades","telefono":"555-0101","activo":true},
			{"id":2,"nombre":"Marta","especialidad":"","telefono":"","activo":false}
		]`))
	})

	barbers, err := c.ListBarbers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(barbers) != 2 {
		t.Fatalf("expected 2 barbers, got %d", len(barbers))
	}
	if barbers[0].Name != "Luis" || barbers[0].Specialty != "Fades" || !barbers[0].Active {
		t.Errorf("unexpected first barber: %+v", barbers[0])
	}
	if barbers[1].Active {
		t.Error("expected second barber to be inactive")
	}
}

func TestCreateAppointment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/citas" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["fechaHoraInicio"] != "2025-03-12T10:00:00" {
			t.Errorf("unexpected start: %v", body["fechaHoraInicio"])
		}
		if body["clienteId"] != float64(3) {
			t.Errorf("unexpected customer id: %v", body["clienteId"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"fechaHoraInicio":"2025-03-12T10:00:00","fechaHoraFin":"2025-03-12T11:00:00","pagado":false}`))
	})

	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	appt, err := c.CreateAppointment(context.Background(), CreateAppointmentRequest{
		CustomerID: 3,
		BarberID:   1,
		ServiceID:  2,
		Start:      NewLocalTime(start),
		End:        NewLocalTime(start.Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.ID != 42 {
		t.Errorf("expected id 42, got %d", appt.ID)
	}
	if !appt.Start.Equal(start) {
		t.Errorf("round-tripped start = %v, want %v", appt.Start.Time, start)
	}
}

func TestCreateAppointment_Conflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"mensaje":"El barbero ya tiene una cita en ese horario"}`))
	})

	_, err := c.CreateAppointment(context.Background(), CreateAppointmentRequest{})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	// The server's message rides along for display.
	if want := "El barbero ya tiene una cita en ese horario"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not carry server message %q", err, want)
	}
}

func TestDeleteBarber_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.DeleteBarber(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatusError_PlainTextBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("la fecha de inicio debe ser anterior a la de fin"))
	})

	_, err := c.CreateService(context.Background(), CreateServiceRequest{Name: "Corte"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", statusErr.Code)
	}
	if statusErr.Message != "la fecha de inicio debe ser anterior a la de fin" {
		t.Errorf("message = %q", statusErr.Message)
	}
}

func TestStatusError_EmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListServices(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Message != "HTTP 500" {
		t.Errorf("message = %q, want HTTP 500", statusErr.Message)
	}
}

func TestTransportError(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(srv.URL, time.Second)

	_, err := c.ListCustomers(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestSetPaid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/citas/7/pagado" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("pagado") != "true" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"id":7,"fechaHoraInicio":"2025-03-12T10:00:00","fechaHoraFin":"2025-03-12T11:00:00","pagado":true}`))
	})

	appt, err := c.SetPaid(context.Background(), 7, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !appt.Paid {
		t.Error("expected appointment to be paid")
	}
}

func TestDayAgenda(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/barberos/3/agenda" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("dia") != "2025-03-12" {
			t.Errorf("unexpected dia: %s", r.URL.Query().Get("dia"))
		}
		w.Write([]byte(`[{"id":1,"fechaHoraInicio":"2025-03-12T10:00:00","fechaHoraFin":"2025-03-12T11:30:00","pagado":false}]`))
	})

	appts, err := c.DayAgenda(context.Background(), 3, "2025-03-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appts))
	}
	if appts[0].Start.Hour() != 10 || appts[0].End.Minute() != 30 {
		t.Errorf("unexpected interval: %v - %v", appts[0].Start.Time, appts[0].End.Time)
	}
}

func TestAddWorkingHours(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/barberos/5/horarios" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var h WorkingHours
		if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if h.Weekday != 6 || h.Start != "10:00" || h.End != "14:00" {
			t.Errorf("unexpected window: %+v", h)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"diaSemana":6,"horaInicio":"10:00","horaFin":"14:00"}`))
	})

	added, err := c.AddWorkingHours(context.Background(), 5, WorkingHours{Weekday: 6, Start: "10:00", End: "14:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.Weekday != 6 {
		t.Errorf("unexpected weekday %d", added.Weekday)
	}
}

func TestSetAvailability(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/barberos/disponibilidad" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var upd AvailabilityUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if upd.BarberID != 2 || len(upd.Hours) != 2 {
			t.Errorf("unexpected update: %+v", upd)
		}
		if upd.Hours[0].Weekday != 1 || upd.Hours[0].Start != "09:00" {
			t.Errorf("unexpected first window: %+v", upd.Hours[0])
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SetAvailability(context.Background(), AvailabilityUpdate{
		BarberID: 2,
		Hours: []WorkingHours{
			{Weekday: 1, Start: "09:00", End: "18:00"},
			{Weekday: 2, Start: "10:00", End: "14:00"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalTime_FractionalSeconds(t *testing.T) {
	var lt LocalTime
	if err := json.Unmarshal([]byte(`"2025-03-12T10:00:00.123456"`), &lt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	if !lt.Equal(want) {
		t.Errorf("parsed %v, want %v", lt.Time, want)
	}
}
