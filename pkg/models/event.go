package models

import "github.com/cardigan-project/cardigan/ent"

// EventFilters contains filtering and pagination options for listing events.
type EventFilters struct {
	EventType string `form:"event_type"`
	SinceID   int    `form:"since_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// EventListResponse contains a page of session events.
type EventListResponse struct {
	Events     []*ent.SessionEvent `json:"events"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
