package events

import "time"

const AssetRequestResolvedTopic = "asset.request.v1"

type AssetRequestResolvedEvent struct {
	EventType  string    `json:"event_type"` // "asset_request_approved" or "asset_request_rejected"
	RequestID  string    `json:"request_id,omitempty"`
	AssetReqID uint      `json:"asset_request_id"`
	EmployeeID uint      `json:"employee_id"`
	AssetID    uint      `json:"asset_id"`
	CompanyID  uint      `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
