package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportType - категория отчета о безопасности
type ReportType string

const (
	ReportTheft              ReportType = "theft"
	ReportRobbery            ReportType = "robbery"
	ReportAssault            ReportType = "assault"
	ReportHarassment         ReportType = "harassment"
	ReportSuspiciousActivity ReportType = "suspicious_activity"
	ReportVandalism          ReportType = "vandalism"
	ReportPoorLighting       ReportType = "poor_lighting"
	ReportOther              ReportType = "other"
)

// ReportTypes - все поддерживаемые категории
var ReportTypes = []ReportType{
	ReportTheft,
	ReportRobbery,
	ReportAssault,
	ReportHarassment,
	ReportSuspiciousActivity,
	ReportVandalism,
	ReportPoorLighting,
	ReportOther,
}

// ReportSeverity - серьезность инцидента
type ReportSeverity string

const (
	SeverityLow      ReportSeverity = "low"
	SeverityMedium   ReportSeverity = "medium"
	SeverityHigh     ReportSeverity = "high"
	SeverityCritical ReportSeverity = "critical"
)

// ReportStatus - статус модерации отчета
type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusVerified  ReportStatus = "verified"
	StatusResolved  ReportStatus = "resolved"
	StatusDismissed ReportStatus = "dismissed"
)

// EligibleReportStatuses - статусы, при которых отчет участвует в скоринге.
// Resolved и dismissed отчеты исключаются из выборки на уровне запроса.
var EligibleReportStatuses = []string{
	string(StatusPending),
	string(StatusVerified),
}

// SafetyReport - отчет сообщества об инциденте
type SafetyReport struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	UserID      uuid.UUID      `json:"user_id" db:"user_id"`
	Type        ReportType     `json:"type" db:"type"`
	Severity    ReportSeverity `json:"severity" db:"severity"`
	Description string         `json:"description,omitempty" db:"description"`
	Lat         float64        `json:"lat" db:"lat"`
	Lon         float64        `json:"lon" db:"lon"`
	Status      ReportStatus   `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// NearbyReport - проекция отчета для скоринга с расстоянием до точки запроса
type NearbyReport struct {
	ID       uuid.UUID      `json:"id" db:"id"`
	Type     ReportType     `json:"type" db:"type"`
	Severity ReportSeverity `json:"severity" db:"severity"`
	Lat      float64        `json:"lat" db:"lat"`
	Lon      float64        `json:"lon" db:"lon"`
	Distance float64        `json:"distance" db:"distance"` // meters
}

// ValidReportType проверяет, что категория поддерживается
func ValidReportType(t ReportType) bool {
	for _, rt := range ReportTypes {
		if rt == t {
			return true
		}
	}
	return false
}
