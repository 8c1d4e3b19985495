package domain

import "time"

type PageViewEvent struct {
	EventID   string    `json:"event_id"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}
