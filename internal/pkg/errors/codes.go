package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrMalformedPolyline = New(
		"MALFORMED_POLYLINE",
		"Polyline encoding is malformed",
		http.StatusBadRequest,
	)

	ErrInvalidPreference = New(
		"INVALID_PREFERENCE",
		"Invalid route preference",
		http.StatusBadRequest,
	)

	ErrInvalidReportType = New(
		"INVALID_REPORT_TYPE",
		"Invalid safety report type",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Safety report not found",
		http.StatusNotFound,
	)

	ErrNoRoutesAvailable = New(
		"NO_ROUTES_AVAILABLE",
		"Directions provider returned no routes",
		http.StatusNotFound,
	)

	ErrDirectionsProvider = New(
		"DIRECTIONS_PROVIDER_ERROR",
		"Directions provider request failed",
		http.StatusBadGateway,
	)

	ErrScoringTimeout = New(
		"SCORING_TIMEOUT",
		"Route scoring did not complete in time",
		http.StatusGatewayTimeout,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
