package events

import "time"

const AssetAssignedTopic = "asset.assignment.v1"

type AssetAssignedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID uint      `json:"employee_id"`
	AssetIDs   []uint    `json:"asset_ids"`
	AssetKind  string    `json:"asset_kind"` // "physical" or "software"
	CompanyID  uint      `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
