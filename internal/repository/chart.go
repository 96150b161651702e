package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// ChartRepository - архив рассчитанных карт рождения в PostgreSQL
type ChartRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewChartRepository(db *sql.DB, logger *logrus.Logger) *ChartRepository {
	return &ChartRepository{db: db, logger: logger}
}

func (r *ChartRepository) Create(ctx context.Context, chart *model.BirthChart) error {
	payload, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal chart: %w", err)
	}

	query := `
		INSERT INTO birth_charts (
			id, birth_year, birth_month, birth_day, birth_hour, birth_minute,
			birth_second, timezone_offset, chart, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		chart.ID,
		chart.Birth.Year,
		chart.Birth.Month,
		chart.Birth.Day,
		chart.Birth.Hour,
		chart.Birth.Minute,
		chart.Birth.Second,
		chart.Birth.TimezoneOffset,
		payload,
		chart.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				return fmt.Errorf("chart already exists")
			}
		}
		return fmt.Errorf("failed to create chart: %w", err)
	}

	return nil
}

func (r *ChartRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BirthChart, error) {
	query := `
        SELECT chart
        FROM birth_charts
        WHERE id = $1
    `

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrChartNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	var chart model.BirthChart
	if err := json.Unmarshal(payload, &chart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart: %w", err)
	}
	return &chart, nil
}

// GetByBirth ищет карту по полному кортежу момента рождения
func (r *ChartRepository) GetByBirth(ctx context.Context, birth model.BirthMoment) (*model.BirthChart, error) {
	query := `
        SELECT chart
        FROM birth_charts
        WHERE birth_year = $1 AND birth_month = $2 AND birth_day = $3
          AND birth_hour = $4 AND birth_minute = $5 AND birth_second = $6
          AND timezone_offset = $7
        ORDER BY created_at DESC
        LIMIT 1
    `

	var payload []byte
	err := r.db.QueryRowContext(ctx, query,
		birth.Year, birth.Month, birth.Day,
		birth.Hour, birth.Minute, birth.Second,
		birth.TimezoneOffset,
	).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrChartNotFound
		}
		return nil, fmt.Errorf("failed to get chart by birth moment: %w", err)
	}

	var chart model.BirthChart
	if err := json.Unmarshal(payload, &chart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart: %w", err)
	}
	return &chart, nil
}
