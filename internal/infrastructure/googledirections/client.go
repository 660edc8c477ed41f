package googledirections

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/saferoute-service/internal/config"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mode       string
	logger     *zap.Logger
}

// NewDirectionsClient создает новый клиент для Google Directions API
func NewDirectionsClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		mode:    cfg.Mode,
		logger:  logger,
	}
}

// directionsResponse - формат ответа Google Directions API
type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string          `json:"summary"`
	OverviewPolyline polylinePayload `json:"overview_polyline"`
	Legs             []directionsLeg `json:"legs"`
}

type polylinePayload struct {
	Points string `json:"points"`
}

type directionsLeg struct {
	Distance     textValue        `json:"distance"`
	Duration     textValue        `json:"duration"`
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
	Steps        []directionsStep `json:"steps"`
}

type directionsStep struct {
	HTMLInstructions string          `json:"html_instructions"`
	Distance         textValue       `json:"distance"`
	Duration         textValue       `json:"duration"`
	Polyline         polylinePayload `json:"polyline"`
	StartLocation    latLng          `json:"start_location"`
	EndLocation      latLng          `json:"end_location"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GetRoutes возвращает альтернативные маршруты между origin и destination
func (c *client) GetRoutes(ctx context.Context, origin, destination domain.Point) ([]domain.RouteCandidate, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lon))
	params.Set("mode", c.mode)
	params.Set("alternatives", "true")
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/directions/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Google Directions API",
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("origin_lon", origin.Lon),
		zap.Float64("destination_lat", destination.Lat),
		zap.Float64("destination_lon", destination.Lon),
		zap.String("mode", c.mode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrDirectionsProvider
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrDirectionsProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directions API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrDirectionsProvider
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrDirectionsProvider
	}

	if directions.Status == "ZERO_RESULTS" {
		return nil, errors.ErrNoRoutesAvailable
	}
	if directions.Status != "OK" {
		c.logger.Error("Directions API returned non-OK status",
			zap.String("status", directions.Status),
			zap.String("error_message", directions.ErrorMessage))
		return nil, errors.ErrDirectionsProvider
	}

	candidates := make([]domain.RouteCandidate, 0, len(directions.Routes))
	for i, route := range directions.Routes {
		candidates = append(candidates, toCandidate(route, i))
	}

	c.logger.Debug("Directions API call successful",
		zap.Int("alternatives", len(candidates)))

	return candidates, nil
}

// toCandidate агрегирует участки маршрута в RouteCandidate.
// Провайдер авторитетен по геометрии и времени: значения переносятся как есть.
func toCandidate(route directionsRoute, index int) domain.RouteCandidate {
	candidate := domain.RouteCandidate{
		Index:    index,
		Polyline: route.OverviewPolyline.Points,
		Summary:  route.Summary,
		Legs:     make([]domain.RouteLeg, 0, len(route.Legs)),
	}

	for _, leg := range route.Legs {
		candidate.DistanceMeters += leg.Distance.Value
		candidate.DurationSeconds += leg.Duration.Value

		steps := make([]domain.RouteStep, 0, len(leg.Steps))
		for _, step := range leg.Steps {
			steps = append(steps, domain.RouteStep{
				Instruction:     step.HTMLInstructions,
				DistanceMeters:  step.Distance.Value,
				DistanceText:    step.Distance.Text,
				DurationSeconds: step.Duration.Value,
				DurationText:    step.Duration.Text,
				Polyline:        step.Polyline.Points,
				StartLocation:   domain.Point{Lat: step.StartLocation.Lat, Lon: step.StartLocation.Lng},
				EndLocation:     domain.Point{Lat: step.EndLocation.Lat, Lon: step.EndLocation.Lng},
			})
		}

		candidate.Legs = append(candidate.Legs, domain.RouteLeg{
			DistanceMeters:  leg.Distance.Value,
			DistanceText:    leg.Distance.Text,
			DurationSeconds: leg.Duration.Value,
			DurationText:    leg.Duration.Text,
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			Steps:           steps,
		})
	}

	// Тексты расстояния/времени берем из первого участка для маршрутов
	// без путевых точек (наш единственный случай)
	if len(route.Legs) == 1 {
		candidate.DistanceText = route.Legs[0].Distance.Text
		candidate.DurationText = route.Legs[0].Duration.Text
	} else {
		candidate.DistanceText = fmt.Sprintf("%.1f km", float64(candidate.DistanceMeters)/1000)
		candidate.DurationText = fmt.Sprintf("%d min", (candidate.DurationSeconds+59)/60)
	}

	return candidate
}
