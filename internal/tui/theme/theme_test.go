package theme

import "testing"

func TestLoad_AllAvailable(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if th.Name != name {
				t.Errorf("expected name %q, got %q", name, th.Name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Errorf("theme %q has empty base colors: %+v", name, th)
			}
			if th.Free == "" || th.Occupied == "" {
				t.Errorf("theme %q has empty slot colors", name)
			}
		})
	}
}

func TestLoad_UnknownFallsBackToMocha(t *testing.T) {
	th, err := Load("nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("expected fallback to mocha, got %q", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Latte") {
		t.Error("expected latte to be available (case insensitive)")
	}
	if IsAvailable("dracula") {
		t.Error("expected dracula to be unavailable")
	}
}
