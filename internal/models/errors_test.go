package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestFetchErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		sentinel error
	}{
		{"network", KindNetwork, ErrNetwork},
		{"not found", KindNotFound, ErrNotFound},
		{"model unavailable", KindModelUnavailable, ErrModelUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFetchError(tt.kind, "APOD", errors.New("boom"))
			wrapped := fmt.Errorf("fetch today: %w", err)

			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("Expected wrapped error to match %v", tt.sentinel)
			}
			if got := KindOf(wrapped); got != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestFetchErrorDoesNotMatchOtherKinds(t *testing.T) {
	err := NewFetchError(KindNotFound, "NASA Image Library", nil)
	if errors.Is(err, ErrNetwork) {
		t.Error("NotFound error should not match ErrNetwork")
	}
	if errors.Is(err, ErrModelUnavailable) {
		t.Error("NotFound error should not match ErrModelUnavailable")
	}
}

func TestFetchErrorMessage(t *testing.T) {
	cause := errors.New("status 500")
	err := NewFetchError(KindNetwork, "DONKI", cause)

	msg := err.Error()
	if !strings.Contains(msg, "DONKI") || !strings.Contains(msg, "status 500") {
		t.Errorf("Unexpected error message: %s", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected FetchError to unwrap to its cause")
	}
}

func TestKindOfPlainErrors(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("Expected KindUnknown, got %s", got)
	}
	if got := KindOf(fmt.Errorf("ctx: %w", ErrNotFound)); got != KindNotFound {
		t.Errorf("Expected KindNotFound for wrapped sentinel, got %s", got)
	}
}

func TestWeatherSnapshotComplete(t *testing.T) {
	full := WeatherSnapshot{
		CMEActivity:    "No CMEs detected",
		SolarStatus:    "Report: no flare activity reported",
		AuroraForecast: "Kp 2.33 (Quiet)",
	}
	if !full.Complete() {
		t.Error("Expected fully populated snapshot to be complete")
	}

	partial := full
	partial.AuroraForecast = ""
	if partial.Complete() {
		t.Error("Expected snapshot without aurora forecast to be incomplete")
	}
}

func TestImageResultDateString(t *testing.T) {
	r := ImageResult{Date: time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)}
	if got := r.DateString(); got != "2025-02-09" {
		t.Errorf("Expected 2025-02-09, got %s", got)
	}
	if got := (ImageResult{}).DateString(); got != "" {
		t.Errorf("Expected empty date string, got %s", got)
	}
}

func TestChatTurnMessage(t *testing.T) {
	turn := ChatTurn{ModelText: "Pulsars are spinning neutron stars.", FunFact: "A day on Venus is longer than its year."}
	want := "🚀 Pulsars are spinning neutron stars.\n\n✨ Fun Fact: A day on Venus is longer than its year."
	if got := turn.Message(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	fallback := ChatTurn{ModelText: "Please ask a question.", FunFact: "ignored", Fallback: true}
	if got := fallback.Message(); got != "Please ask a question." {
		t.Errorf("Expected fallback text only, got %q", got)
	}
}

func TestKpLevel(t *testing.T) {
	tests := []struct {
		kp   float64
		want string
	}{
		{0, "Quiet"},
		{2, "Quiet"},
		{2.33, "Unsettled"},
		{3.67, "Active"},
		{4, "Active"},
		{4.33, "Active"},
		{4.67, "Active"},
		{5, "Storm"},
		{9, "Storm"},
	}
	for _, tt := range tests {
		if got := KpLevel(tt.kp); got != tt.want {
			t.Errorf("KpLevel(%v) = %s, want %s", tt.kp, got, tt.want)
		}
	}
}
