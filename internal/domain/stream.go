package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamReportsCreated = "stream:reports:created"
)

// ReportCreatedEvent - событие о новом отчете сообщества.
// Публикуется fire-and-forget; доставка и порядок подписчикам не гарантируются.
type ReportCreatedEvent struct {
	ReportID  uuid.UUID      `json:"report_id"`
	Type      ReportType     `json:"report_type"`
	Severity  ReportSeverity `json:"severity"`
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	CreatedAt time.Time      `json:"created_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
