// Package lifecycle defines the campaign task state machine shared by the
// poller, the alert evaluator and the campaign processor.
package lifecycle

import "adops-server/internal/store"

// transitions maps each state to the states it may legally move to.
// Scheduled -> InProgress happens at launch; InProgress -> Paused only via
// auto-pause; InProgress -> Completed/Failed only via platform status
// mapping; Paused -> InProgress is an external resume. Completed and Failed
// are terminal.
var transitions = map[string][]string{
	store.CampaignTaskStatusScheduled:  {store.CampaignTaskStatusInProgress},
	store.CampaignTaskStatusInProgress: {store.CampaignTaskStatusPaused, store.CampaignTaskStatusCompleted, store.CampaignTaskStatusFailed},
	store.CampaignTaskStatusPaused:     {store.CampaignTaskStatusInProgress},
	store.CampaignTaskStatusCompleted:  {},
	store.CampaignTaskStatusFailed:     {},
}

// CanTransition reports whether moving a campaign task from one lifecycle
// state to another is legal. Illegal transitions are rejected as no-ops by
// callers, not raised as errors.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state admits no further transitions.
func IsTerminal(state string) bool {
	return len(transitions[state]) == 0
}
