package lifecycle

import (
	"testing"

	"adops-server/internal/store"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"launch", store.CampaignTaskStatusScheduled, store.CampaignTaskStatusInProgress, true},
		{"auto pause", store.CampaignTaskStatusInProgress, store.CampaignTaskStatusPaused, true},
		{"platform completed", store.CampaignTaskStatusInProgress, store.CampaignTaskStatusCompleted, true},
		{"platform failed", store.CampaignTaskStatusInProgress, store.CampaignTaskStatusFailed, true},
		{"external resume", store.CampaignTaskStatusPaused, store.CampaignTaskStatusInProgress, true},
		{"pause a completed campaign", store.CampaignTaskStatusCompleted, store.CampaignTaskStatusPaused, false},
		{"revive a failed campaign", store.CampaignTaskStatusFailed, store.CampaignTaskStatusInProgress, false},
		{"skip launch", store.CampaignTaskStatusScheduled, store.CampaignTaskStatusPaused, false},
		{"unknown state", "archived", store.CampaignTaskStatusPaused, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(store.CampaignTaskStatusCompleted) {
		t.Error("completed should be terminal")
	}
	if !IsTerminal(store.CampaignTaskStatusFailed) {
		t.Error("failed should be terminal")
	}
	if IsTerminal(store.CampaignTaskStatusPaused) {
		t.Error("paused should not be terminal")
	}
}
