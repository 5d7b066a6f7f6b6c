package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/config"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewApp(api.New(srv.URL, 2*time.Second), config.Default())
}

func runCmd(t *testing.T, a *App, args ...string) error {
	t.Helper()
	a.root.SetOut(io.Discard)
	a.root.SetErr(io.Discard)
	a.root.SetArgs(args)
	return a.Execute()
}

func TestBookCmd(t *testing.T) {
	var body map[string]any
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/citas" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"fechaHoraInicio":"2025-03-12T10:00:00","fechaHoraFin":"2025-03-12T11:00:00","pagado":false}`))
	})

	err := runCmd(t, a, "book", "3", "1", "2", "--date=2025-03-12", "--start=10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if body["clienteId"] != float64(3) || body["barberoId"] != float64(1) || body["servicioId"] != float64(2) {
		t.Errorf("unexpected ids in body: %v", body)
	}
	if body["fechaHoraInicio"] != "2025-03-12T10:00:00" {
		t.Errorf("unexpected start: %v", body["fechaHoraInicio"])
	}
	// End defaults to one hour after the start.
	if body["fechaHoraFin"] != "2025-03-12T11:00:00" {
		t.Errorf("unexpected end: %v", body["fechaHoraFin"])
	}
}

func TestBookCmd_RejectsShortAppointment(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached the backend: %s %s", r.Method, r.URL.Path)
	})

	err := runCmd(t, a, "book", "3", "1", "2", "--date=2025-03-12", "--start=10:00", "--end=10:30")
	if err == nil {
		t.Fatal("expected an error for a 30 minute appointment")
	}
}

func TestBookCmd_RejectsEndBeforeStart(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached the backend: %s %s", r.Method, r.URL.Path)
	})

	err := runCmd(t, a, "book", "3", "1", "2", "--date=2025-03-12", "--start=10:00", "--end=09:00")
	if err == nil {
		t.Fatal("expected an error when end precedes start")
	}
}

func TestHoursAddCmd(t *testing.T) {
	var h api.WorkingHours
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/barberos/2/horarios" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"diaSemana":6,"horaInicio":"10:00","horaFin":"14:00"}`))
	})

	if err := runCmd(t, a, "hours", "add", "2", "6", "10:00", "14:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Weekday != 6 || h.Start != "10:00" || h.End != "14:00" {
		t.Errorf("unexpected window sent: %+v", h)
	}
}

func TestHoursAddCmd_RejectsBadWindow(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached the backend: %s %s", r.Method, r.URL.Path)
	})

	if err := runCmd(t, a, "hours", "add", "2", "8", "10:00", "14:00"); err == nil {
		t.Error("expected an error for weekday 8")
	}
	if err := runCmd(t, a, "hours", "add", "2", "1", "14:00", "10:00"); err == nil {
		t.Error("expected an error when start is after end")
	}
	if err := runCmd(t, a, "hours", "add", "2", "1", "99:99", "14:00"); err == nil {
		t.Error("expected an error for an invalid clock value")
	}
}

func TestAgendaCmd_Week(t *testing.T) {
	var dias []string
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/barberos/1/agenda" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		dias = append(dias, r.URL.Query().Get("dia"))
		w.Write([]byte(`[]`))
	})

	if err := runCmd(t, a, "agenda", "1", "--week=2025-03-12", "--no-color"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dias) != 7 {
		t.Fatalf("expected 7 day fetches, got %d", len(dias))
	}
	if dias[0] != "2025-03-10" {
		t.Errorf("first day = %s, want the Monday 2025-03-10", dias[0])
	}
	if dias[6] != "2025-03-16" {
		t.Errorf("last day = %s, want the Sunday 2025-03-16", dias[6])
	}
}

func TestAgendaCmd_DateAndWeekExclusive(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached the backend: %s %s", r.Method, r.URL.Path)
	})

	if err := runCmd(t, a, "agenda", "1", "--date=2025-03-12", "--week=2025-03-12"); err == nil {
		t.Error("expected an error when both --date and --week are set")
	}
}

func TestAppointmentsCmd(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/citas" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"fechaHoraInicio":"2025-03-12T10:00:00","fechaHoraFin":"2025-03-12T11:00:00","pagado":true}]`))
	})

	if err := runCmd(t, a, "appointments", "--no-color"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
