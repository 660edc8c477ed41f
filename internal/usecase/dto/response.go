package dto

import "github.com/saferoute-service/internal/domain"

// Distance - расстояние маршрута
type Distance struct {
	Meters int    `json:"meters"`
	Text   string `json:"text"`
}

// Duration - длительность маршрута
type Duration struct {
	Seconds int    `json:"seconds"`
	Text    string `json:"text"`
}

// RouteResult - один оцененный маршрут в ответе
type RouteResult struct {
	RouteID       string             `json:"route_id"`
	RouteType     string             `json:"route_type"`
	Summary       string             `json:"summary,omitempty"`
	Distance      Distance           `json:"distance"`
	Duration      Duration           `json:"duration"`
	SafetyScore   float64            `json:"safety_score"`
	SafetyFactors domain.FactorSet   `json:"safety_factors"`
	Tags          []string           `json:"tags"`
	Polyline      string             `json:"polyline"`
	Steps         []domain.RouteStep `json:"steps"`
}

// SafeRoutesResponse - ответ на построение маршрутов
type SafeRoutesResponse struct {
	Preference string        `json:"preference"`
	Routes     []RouteResult `json:"routes"`
}

// ReportResponse - отчет о безопасности в ответе
type ReportResponse struct {
	Report *domain.SafetyReport `json:"report"`
}

// NearbyReportsResponse - отчеты в радиусе
type NearbyReportsResponse struct {
	Reports []*domain.NearbyReport `json:"reports"`
	Total   int                    `json:"total"`
}

// RouteRecordResponse - сохраненный маршрут
type RouteRecordResponse struct {
	Route *domain.RouteRecord `json:"route"`
}

// RouteHistoryResponse - история маршрутов пользователя
type RouteHistoryResponse struct {
	Routes []*domain.RouteRecord `json:"routes"`
	Total  int                   `json:"total"`
}
