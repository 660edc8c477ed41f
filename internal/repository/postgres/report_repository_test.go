package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saferoute-service/internal/domain"
	pkgErrors "github.com/saferoute-service/internal/pkg/errors"
)

func newMockReportRepository(t *testing.T) (*reportRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &DB{DB: sqlx.NewDb(mockDB, "sqlmock"), logger: zap.NewNop()}
	return NewReportRepository(db).(*reportRepository), mock
}

var nearbyColumns = []string{"id", "type", "severity", "lat", "lon", "distance"}

func TestFindNearby(t *testing.T) {
	t.Run("returns eligible reports", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		first := uuid.New()
		second := uuid.New()
		mock.ExpectQuery("FROM safety_reports").
			WithArgs(2.17, 41.38, pq.Array(domain.EligibleReportStatuses), 500.0).
			WillReturnRows(sqlmock.NewRows(nearbyColumns).
				AddRow(first.String(), "theft", "high", 41.381, 2.171, 120.5).
				AddRow(second.String(), "poor_lighting", "low", 41.379, 2.169, 310.0))

		reports, err := repo.FindNearby(context.Background(), 41.38, 2.17, 500)

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, first, reports[0].ID)
		assert.Equal(t, domain.ReportTheft, reports[0].Type)
		assert.Equal(t, 120.5, reports[0].Distance)
		assert.Equal(t, second, reports[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan failure aborts instead of shrinking the result", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		// Вторая строка не парсится: частичный результат недопустим
		mock.ExpectQuery("FROM safety_reports").
			WillReturnRows(sqlmock.NewRows(nearbyColumns).
				AddRow(uuid.New().String(), "theft", "high", 41.381, 2.171, 120.5).
				AddRow("not-a-uuid", "robbery", "critical", 41.379, 2.169, 310.0))

		reports, err := repo.FindNearby(context.Background(), 41.38, 2.17, 500)

		assert.Nil(t, reports)
		assert.Equal(t, pkgErrors.ErrDatabaseError, err)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		mock.ExpectQuery("FROM safety_reports").WillReturnError(assert.AnError)

		reports, err := repo.FindNearby(context.Background(), 41.38, 2.17, 500)

		assert.Nil(t, reports)
		assert.Equal(t, pkgErrors.ErrDatabaseError, err)
	})

	t.Run("no reports in radius", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		mock.ExpectQuery("FROM safety_reports").
			WillReturnRows(sqlmock.NewRows(nearbyColumns))

		reports, err := repo.FindNearby(context.Background(), 41.38, 2.17, 500)

		require.NoError(t, err)
		assert.Empty(t, reports)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("no matching report", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		mock.ExpectExec("UPDATE safety_reports").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusVerified)

		assert.Equal(t, pkgErrors.ErrReportNotFound, err)
	})

	t.Run("status updated", func(t *testing.T) {
		repo, mock := newMockReportRepository(t)

		mock.ExpectExec("UPDATE safety_reports").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusResolved)

		assert.NoError(t, err)
	})
}
