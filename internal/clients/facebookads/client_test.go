package facebookads

import (
	"context"
	"encoding/json"
	"testing"

	"adops-server/internal/channels"
	"adops-server/internal/clients/adplatformtest"
	"adops-server/internal/observability"
)

func newTestAdapter(t *testing.T) (channels.Adapter, *adplatformtest.Server) {
	t.Helper()
	platform := adplatformtest.NewServer(adplatformtest.DialectFacebook, adplatformtest.NewStore())
	t.Cleanup(platform.Close)

	adapter := New(channels.Config{
		BaseURL:   platform.URL(),
		AuthToken: "tok-facebook",
	}, observability.NewLogger())
	return adapter, platform
}

func TestLaunch_ReturnsExternalRef(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	ref, err := adapter.Launch(context.Background(), channels.LaunchSpec{
		Title:    "Winter Promo",
		Audience: "eu-fashion",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref["id"] == "" {
		t.Error("expected id in external ref")
	}
	if ref["account"] == "" {
		t.Error("expected account in external ref")
	}
}

func TestLaunchStatusRoundTrip(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	ref, err := adapter.Launch(ctx, channels.LaunchSpec{Title: "Round Trip"})
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	raw, err := adapter.GetStatus(ctx, ref)
	if err != nil {
		t.Fatalf("status fetch failed: %v", err)
	}

	status := adapter.NormalizeStatus(raw)
	switch status.State {
	case channels.StateRunning, channels.StatePaused, channels.StateCompleted, channels.StateFailed:
	default:
		t.Errorf("state %q is not canonical", status.State)
	}
	if status.Spend != nil && *status.Spend < 0 {
		t.Errorf("expected non-negative spend, got %v", *status.Spend)
	}
}

func TestNormalizeStatus_IsTotal(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	tests := []struct {
		name string
		raw  string
		want channels.CanonicalState
	}{
		{"active", `{"status":"ACTIVE","spent":1250,"roi":1.1}`, channels.StateRunning},
		{"paused", `{"status":"PAUSED"}`, channels.StatePaused},
		{"ended", `{"status":"ENDED","spent":9900}`, channels.StateCompleted},
		{"deleted", `{"status":"DELETED"}`, channels.StateFailed},
		{"empty object", `{}`, channels.StateFailed},
		{"not json", `oops`, channels.StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := adapter.NormalizeStatus(json.RawMessage(tt.raw))
			if status.State != tt.want {
				t.Errorf("expected %s, got %s", tt.want, status.State)
			}
			if string(status.Raw) != tt.raw {
				t.Errorf("raw payload not retained: %s", status.Raw)
			}
		})
	}
}

func TestNormalizeStatus_SpentMinorUnits(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	status := adapter.NormalizeStatus(json.RawMessage(`{"status":"ACTIVE","spent":1250}`))
	if status.Spend == nil {
		t.Fatal("expected spend to be set")
	}
	if *status.Spend != 12.5 {
		t.Errorf("expected 1250 cents to normalize to 12.5, got %v", *status.Spend)
	}

	absent := adapter.NormalizeStatus(json.RawMessage(`{"status":"ACTIVE"}`))
	if absent.Spend != nil {
		t.Errorf("expected absent spent to stay nil, got %v", *absent.Spend)
	}
}

func TestPause_Idempotent(t *testing.T) {
	adapter, platform := newTestAdapter(t)
	ctx := context.Background()

	ref, err := adapter.Launch(ctx, channels.LaunchSpec{Title: "Pause Twice"})
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	if err := adapter.Pause(ctx, ref); err != nil {
		t.Fatalf("first pause failed: %v", err)
	}
	if err := adapter.Pause(ctx, ref); err != nil {
		t.Fatalf("second pause failed: %v", err)
	}
	if calls := platform.PauseCalls(ref["id"]); calls != 2 {
		t.Errorf("expected platform to see 2 pause calls, got %d", calls)
	}

	raw, err := adapter.GetStatus(ctx, ref)
	if err != nil {
		t.Fatalf("status fetch failed: %v", err)
	}
	if status := adapter.NormalizeStatus(raw); status.State != channels.StatePaused {
		t.Errorf("expected PAUSED after double pause, got %s", status.State)
	}
}
