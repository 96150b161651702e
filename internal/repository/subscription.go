package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// SubscriptionRepository - подписки на ежедневный гороскоп в PostgreSQL
type SubscriptionRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewSubscriptionRepository(db *sql.DB, logger *logrus.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, logger: logger}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	query := `
		INSERT INTO horoscope_subscriptions (
			id, channel, address, chat_id,
			birth_year, birth_month, birth_day, birth_hour, birth_minute,
			birth_second, timezone_offset, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.Channel,
		sub.Address,
		sub.ChatID,
		sub.Birth.Year,
		sub.Birth.Month,
		sub.Birth.Day,
		sub.Birth.Hour,
		sub.Birth.Minute,
		sub.Birth.Second,
		sub.Birth.TimezoneOffset,
		sub.Active,
		sub.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				return fmt.Errorf("subscription already exists")
			}
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// GetActive возвращает все активные подписки для рассылки
func (r *SubscriptionRepository) GetActive(ctx context.Context) ([]model.Subscription, error) {
	query := `
		SELECT id, channel, address, chat_id,
		       birth_year, birth_month, birth_day, birth_hour, birth_minute,
		       birth_second, timezone_offset, active, created_at
		FROM horoscope_subscriptions
		WHERE active = TRUE
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		if err := rows.Scan(
			&sub.ID,
			&sub.Channel,
			&sub.Address,
			&sub.ChatID,
			&sub.Birth.Year,
			&sub.Birth.Month,
			&sub.Birth.Day,
			&sub.Birth.Hour,
			&sub.Birth.Minute,
			&sub.Birth.Second,
			&sub.Birth.TimezoneOffset,
			&sub.Active,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// GetByChatID возвращает активную подписку Telegram-чата
func (r *SubscriptionRepository) GetByChatID(ctx context.Context, chatID int64) (*model.Subscription, error) {
	query := `
		SELECT id, channel, address, chat_id,
		       birth_year, birth_month, birth_day, birth_hour, birth_minute,
		       birth_second, timezone_offset, active, created_at
		FROM horoscope_subscriptions
		WHERE chat_id = $1 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`

	var sub model.Subscription
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&sub.ID,
		&sub.Channel,
		&sub.Address,
		&sub.ChatID,
		&sub.Birth.Year,
		&sub.Birth.Month,
		&sub.Birth.Day,
		&sub.Birth.Hour,
		&sub.Birth.Minute,
		&sub.Birth.Second,
		&sub.Birth.TimezoneOffset,
		&sub.Active,
		&sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// Deactivate отключает подписку
func (r *SubscriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE horoscope_subscriptions
		SET active = FALSE
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return model.ErrSubscriptionNotFound
	}

	return nil
}
