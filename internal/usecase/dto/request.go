package dto

// Point - координаты точки. Теги только диапазонные: required на float64
// отбрасывал бы нулевое значение, а экватор и нулевой меридиан валидны.
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// SafeRoutesRequest - запрос на построение маршрутов с оценкой безопасности.
// Origin/Destination - указатели: наличие точки проверяется отдельно от
// диапазона координат.
type SafeRoutesRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Origin      *Point `json:"origin" validate:"required"`
	Destination *Point `json:"destination" validate:"required"`
	Preference  string `json:"preference" validate:"omitempty,oneof=safest fastest balanced"`
}

// CreateReportRequest - запрос на создание отчета о безопасности
type CreateReportRequest struct {
	UserID      string  `json:"user_id" validate:"required,uuid"`
	Type        string  `json:"type" validate:"required,oneof=theft robbery assault harassment suspicious_activity vandalism poor_lighting other"`
	Severity    string  `json:"severity" validate:"required,oneof=low medium high critical"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
}

// NearbyReportsRequest - запрос отчетов в радиусе от точки
type NearbyReportsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"omitempty,min=10,max=5000"` // meters
}

// UpdateReportStatusRequest - запрос на смену статуса модерации отчета
type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified resolved dismissed"`
}

// ListRoutesRequest - запрос истории маршрутов пользователя
type ListRoutesRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}
