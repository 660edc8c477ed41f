package dto_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/saferoute-service/internal/pkg/validator"
	"github.com/saferoute-service/internal/usecase/dto"
)

func TestNearbyReportsRequestValidation(t *testing.T) {
	t.Run("equator latitude is valid", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 0, Lon: 51, Radius: 500})
		assert.NoError(t, err)
	})

	t.Run("prime meridian longitude is valid", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 51.5, Lon: 0, Radius: 500})
		assert.NoError(t, err)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 90.1, Lon: 0, Radius: 500})
		assert.Error(t, err)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 0, Lon: -180.1, Radius: 500})
		assert.Error(t, err)
	})

	t.Run("radius below minimum", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 41.38, Lon: 2.17, Radius: 5})
		assert.Error(t, err)
	})

	t.Run("zero radius means default", func(t *testing.T) {
		err := validator.Validate(&dto.NearbyReportsRequest{Lat: 41.38, Lon: 2.17})
		assert.NoError(t, err)
	})
}

func TestSafeRoutesRequestValidation(t *testing.T) {
	userID := uuid.New().String()

	t.Run("null island endpoints are valid", func(t *testing.T) {
		err := validator.Validate(&dto.SafeRoutesRequest{
			UserID:      userID,
			Origin:      &dto.Point{Lat: 0, Lon: 0},
			Destination: &dto.Point{Lat: 0.01, Lon: 0.01},
		})
		assert.NoError(t, err)
	})

	t.Run("missing origin", func(t *testing.T) {
		err := validator.Validate(&dto.SafeRoutesRequest{
			UserID:      userID,
			Destination: &dto.Point{Lat: 41.40, Lon: 2.19},
		})
		assert.Error(t, err)
	})

	t.Run("origin latitude out of range", func(t *testing.T) {
		err := validator.Validate(&dto.SafeRoutesRequest{
			UserID:      userID,
			Origin:      &dto.Point{Lat: -90.5, Lon: 2.17},
			Destination: &dto.Point{Lat: 41.40, Lon: 2.19},
		})
		assert.Error(t, err)
	})

	t.Run("unknown preference", func(t *testing.T) {
		err := validator.Validate(&dto.SafeRoutesRequest{
			UserID:      userID,
			Origin:      &dto.Point{Lat: 41.38, Lon: 2.17},
			Destination: &dto.Point{Lat: 41.40, Lon: 2.19},
			Preference:  "scenic",
		})
		assert.Error(t, err)
	})
}

func TestCreateReportRequestValidation(t *testing.T) {
	t.Run("report on the equator is valid", func(t *testing.T) {
		err := validator.Validate(&dto.CreateReportRequest{
			UserID:   uuid.New().String(),
			Type:     "theft",
			Severity: "high",
			Lat:      0,
			Lon:      0,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		err := validator.Validate(&dto.CreateReportRequest{
			UserID:   uuid.New().String(),
			Type:     "arson",
			Severity: "high",
			Lat:      41.38,
			Lon:      2.17,
		})
		assert.Error(t, err)
	})
}
