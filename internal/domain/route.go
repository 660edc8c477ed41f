package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouteType - итоговая метка маршрута, присваивается классификатором
// один раз при создании и далее не пересчитывается
type RouteType string

const (
	RouteSafest   RouteType = "safest"
	RouteFastest  RouteType = "fastest"
	RouteBalanced RouteType = "balanced"
)

// RoutePreference - предпочтение пользователя при ранжировании альтернатив
type RoutePreference string

const (
	PreferSafest   RoutePreference = "safest"
	PreferFastest  RoutePreference = "fastest"
	PreferBalanced RoutePreference = "balanced"
)

// FactorSet - шесть факторов безопасности, каждый в диапазоне [0,10]
type FactorSet struct {
	Lighting          float64 `json:"lighting" db:"lighting"`
	PolicePresence    float64 `json:"police_presence" db:"police_presence"`
	CrimeRate         float64 `json:"crime_rate" db:"crime_rate"`
	PedestrianTraffic float64 `json:"pedestrian_traffic" db:"pedestrian_traffic"`
	RoadCondition     float64 `json:"road_condition" db:"road_condition"`
	CommunityReports  float64 `json:"community_reports" db:"community_reports"`
}

// SafetyScore - итоговая оценка маршрута. Overall всегда выводится из
// факторов взвешенной суммой и отдельно не хранится как независимое значение.
type SafetyScore struct {
	Overall float64   `json:"overall"`
	Factors FactorSet `json:"factors"`
}

// RouteStep - один шаг навигации внутри участка маршрута
type RouteStep struct {
	Instruction     string `json:"instruction"`
	DistanceMeters  int    `json:"distance_meters"`
	DistanceText    string `json:"distance_text"`
	DurationSeconds int    `json:"duration_seconds"`
	DurationText    string `json:"duration_text"`
	Polyline        string `json:"polyline,omitempty"`
	StartLocation   Point  `json:"start_location"`
	EndLocation     Point  `json:"end_location"`
}

// RouteLeg - участок маршрута между двумя путевыми точками
type RouteLeg struct {
	DistanceMeters  int         `json:"distance_meters"`
	DistanceText    string      `json:"distance_text"`
	DurationSeconds int         `json:"duration_seconds"`
	DurationText    string      `json:"duration_text"`
	StartAddress    string      `json:"start_address,omitempty"`
	EndAddress      string      `json:"end_address,omitempty"`
	Steps           []RouteStep `json:"steps"`
}

// RouteCandidate - одна альтернатива от провайдера маршрутов.
// Живет только внутри одного запроса скоринга; после скоринга
// материализуется в RouteRecord.
type RouteCandidate struct {
	Index           int        `json:"index"`
	Polyline        string     `json:"polyline"`
	Summary         string     `json:"summary,omitempty"`
	DistanceMeters  int        `json:"distance_meters"`
	DistanceText    string     `json:"distance_text"`
	DurationSeconds int        `json:"duration_seconds"`
	DurationText    string     `json:"duration_text"`
	Legs            []RouteLeg `json:"legs"`
}

// ScoredRoute - альтернатива вместе с результатом скоринга и классификации
type ScoredRoute struct {
	Candidate RouteCandidate `json:"candidate"`
	Score     SafetyScore    `json:"score"`
	RouteType RouteType      `json:"route_type"`
	Tags      []string       `json:"tags"`
}

// SafeRoutesResult - ранжированный набор оцененных альтернатив одного
// запроса вместе с идентификаторами материализованных записей
type SafeRoutesResult struct {
	Preference RoutePreference `json:"preference"`
	Routes     []ScoredRoute   `json:"routes"`
	RecordIDs  []uuid.UUID     `json:"record_ids"`
}

// RouteRecord - сохраненный маршрут пользователя
type RouteRecord struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	Origin          Point       `json:"origin"`
	Destination     Point       `json:"destination"`
	Polyline        string      `json:"polyline" db:"polyline"`
	Summary         string      `json:"summary,omitempty" db:"summary"`
	DistanceMeters  int         `json:"distance_meters" db:"distance_meters"`
	DistanceText    string      `json:"distance_text" db:"distance_text"`
	DurationSeconds int         `json:"duration_seconds" db:"duration_seconds"`
	DurationText    string      `json:"duration_text" db:"duration_text"`
	SafetyScore     float64     `json:"safety_score" db:"safety_score"`
	Factors         FactorSet   `json:"factors"`
	RouteType       RouteType   `json:"route_type" db:"route_type"`
	Tags            []string    `json:"tags"`
	Saved           bool        `json:"saved" db:"saved"`
	Completed       bool        `json:"completed" db:"completed"`
	FeedbackScore   *int        `json:"feedback_score,omitempty" db:"feedback_score"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// RouteRecordPatch - явная структура частичного обновления записи маршрута.
// Обновляются только ненулевые поля.
type RouteRecordPatch struct {
	Saved         *bool `json:"saved,omitempty"`
	Completed     *bool `json:"completed,omitempty"`
	FeedbackScore *int  `json:"feedback_score,omitempty" validate:"omitempty,min=1,max=5"`
}

// ValidPreference проверяет значение предпочтения
func ValidPreference(p RoutePreference) bool {
	switch p {
	case PreferSafest, PreferFastest, PreferBalanced:
		return true
	}
	return false
}
