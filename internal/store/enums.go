package store

// Campaign Task ENUMs
const (
	CampaignTaskStatusScheduled  = "scheduled"
	CampaignTaskStatusInProgress = "in_progress"
	CampaignTaskStatusPaused     = "paused"
	CampaignTaskStatusCompleted  = "completed"
	CampaignTaskStatusFailed     = "failed"
)

// Alert Trigger ENUMs
const (
	TriggerActionAutoPause = "auto_pause"
	TriggerActionNotify    = "notify"
)

const (
	TriggerComparatorLT  = "<"
	TriggerComparatorLTE = "<="
	TriggerComparatorGT  = ">"
	TriggerComparatorGTE = ">="
	TriggerComparatorEQ  = "=="
)
