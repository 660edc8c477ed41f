package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saferoute-service/internal/domain"
	pkgErrors "github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/usecase"
)

// MockReportRepository is a mock of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.SafetyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SafetyReport), args.Error(1)
}

func (m *MockReportRepository) FindNearby(ctx context.Context, lat, lon float64, maxDistance float64) ([]*domain.NearbyReport, error) {
	args := m.Called(ctx, lat, lon, maxDistance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NearbyReport), args.Error(1)
}

func (m *MockReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func TestCreateReport(t *testing.T) {
	logger := zap.NewNop()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		streamRepo := new(MockStreamRepository)

		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SafetyReport")).Return(nil)
		streamRepo.On("PublishToStream", mock.Anything, domain.StreamReportsCreated, mock.Anything).Return(nil)

		uc := usecase.NewReportUseCase(reportRepo, streamRepo, logger)
		report, err := uc.CreateReport(context.Background(), userID,
			domain.ReportTheft, domain.SeverityHigh, "bike stolen near the park entrance", 41.38, 2.17)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, report.ID)
		assert.Equal(t, userID, report.UserID)
		assert.Equal(t, domain.StatusPending, report.Status)
		assert.Equal(t, report.CreatedAt, report.UpdatedAt)

		reportRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("stream failure does not roll back report", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		streamRepo := new(MockStreamRepository)

		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SafetyReport")).Return(nil)
		streamRepo.On("PublishToStream", mock.Anything, domain.StreamReportsCreated, mock.Anything).
			Return(pkgErrors.ErrCacheError)

		uc := usecase.NewReportUseCase(reportRepo, streamRepo, logger)
		report, err := uc.CreateReport(context.Background(), userID,
			domain.ReportVandalism, domain.SeverityLow, "", 41.38, 2.17)

		require.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := usecase.NewReportUseCase(new(MockReportRepository), new(MockStreamRepository), logger)
		_, err := uc.CreateReport(context.Background(), userID,
			domain.ReportTheft, domain.SeverityHigh, "", 91.0, 2.17)

		assert.Equal(t, pkgErrors.ErrInvalidCoordinates, err)
	})

	t.Run("invalid report type", func(t *testing.T) {
		uc := usecase.NewReportUseCase(new(MockReportRepository), new(MockStreamRepository), logger)
		_, err := uc.CreateReport(context.Background(), userID,
			domain.ReportType("kidnapping"), domain.SeverityHigh, "", 41.38, 2.17)

		assert.Equal(t, pkgErrors.ErrInvalidReportType, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		streamRepo := new(MockStreamRepository)

		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SafetyReport")).
			Return(pkgErrors.ErrDatabaseError)

		uc := usecase.NewReportUseCase(reportRepo, streamRepo, logger)
		_, err := uc.CreateReport(context.Background(), userID,
			domain.ReportTheft, domain.SeverityHigh, "", 41.38, 2.17)

		assert.Equal(t, pkgErrors.ErrDatabaseError, err)
		streamRepo.AssertNotCalled(t, "PublishToStream")
	})
}

func TestGetNearbyReports(t *testing.T) {
	logger := zap.NewNop()

	t.Run("passes radius through", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		expected := []*domain.NearbyReport{
			{ID: uuid.New(), Type: domain.ReportTheft, Severity: domain.SeverityHigh, Distance: 120.5},
		}
		reportRepo.On("FindNearby", mock.Anything, 41.38, 2.17, 1000.0).Return(expected, nil)

		uc := usecase.NewReportUseCase(reportRepo, new(MockStreamRepository), logger)
		reports, err := uc.GetNearbyReports(context.Background(), 41.38, 2.17, 1000)

		require.NoError(t, err)
		assert.Equal(t, expected, reports)
	})

	t.Run("zero radius defaults to 500m", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		reportRepo.On("FindNearby", mock.Anything, 41.38, 2.17, 500.0).Return([]*domain.NearbyReport{}, nil)

		uc := usecase.NewReportUseCase(reportRepo, new(MockStreamRepository), logger)
		_, err := uc.GetNearbyReports(context.Background(), 41.38, 2.17, 0)

		require.NoError(t, err)
		reportRepo.AssertExpectations(t)
	})

	t.Run("radius out of range", func(t *testing.T) {
		uc := usecase.NewReportUseCase(new(MockReportRepository), new(MockStreamRepository), logger)

		_, err := uc.GetNearbyReports(context.Background(), 41.38, 2.17, 6000)
		assert.Equal(t, pkgErrors.ErrInvalidRadius, err)

		_, err = uc.GetNearbyReports(context.Background(), 41.38, 2.17, 5)
		assert.Equal(t, pkgErrors.ErrInvalidRadius, err)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := usecase.NewReportUseCase(new(MockReportRepository), new(MockStreamRepository), logger)
		_, err := uc.GetNearbyReports(context.Background(), 41.38, 181.0, 500)

		assert.Equal(t, pkgErrors.ErrInvalidCoordinates, err)
	})
}

func TestUpdateReportStatus(t *testing.T) {
	logger := zap.NewNop()
	reportID := uuid.New()

	t.Run("success returns updated report", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		updated := &domain.SafetyReport{ID: reportID, Status: domain.StatusVerified}

		reportRepo.On("UpdateStatus", mock.Anything, reportID, domain.StatusVerified).Return(nil)
		reportRepo.On("GetByID", mock.Anything, reportID).Return(updated, nil)

		uc := usecase.NewReportUseCase(reportRepo, new(MockStreamRepository), logger)
		report, err := uc.UpdateReportStatus(context.Background(), reportID, domain.StatusVerified)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusVerified, report.Status)
	})

	t.Run("not found", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		reportRepo.On("UpdateStatus", mock.Anything, reportID, domain.StatusResolved).
			Return(pkgErrors.ErrReportNotFound)

		uc := usecase.NewReportUseCase(reportRepo, new(MockStreamRepository), logger)
		_, err := uc.UpdateReportStatus(context.Background(), reportID, domain.StatusResolved)

		assert.Equal(t, pkgErrors.ErrReportNotFound, err)
		reportRepo.AssertNotCalled(t, "GetByID")
	})
}
