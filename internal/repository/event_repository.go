package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/Freeeeeet/mergington_activities/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository журнал записей в PostgreSQL
type EventRepository struct {
	*base.Repository
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет событие журнала
func (r *EventRepository) Create(ctx context.Context, event *model.EnrollmentEvent) error {
	query := `
		INSERT INTO enrollment_events (id, activity_name, email, action, teacher_username, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	affected, err := r.ExecAffected(ctx, query,
		event.ID,
		event.ActivityName,
		event.Email,
		string(event.Action),
		event.TeacherUsername,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create enrollment event: %w", err)
	}
	if affected != 1 {
		return fmt.Errorf("create enrollment event: %d rows affected", affected)
	}

	return nil
}

// ListByActivity возвращает последние события занятия, новые первыми
func (r *EventRepository) ListByActivity(ctx context.Context, activityName string, limit int) ([]*model.EnrollmentEvent, error) {
	query := `
		SELECT id, activity_name, email, action, teacher_username, created_at
		FROM enrollment_events
		WHERE activity_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.Query(ctx, query, activityName, limit)
	if err != nil {
		return nil, fmt.Errorf("list enrollment events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.EnrollmentEvent, 0, limit)
	for rows.Next() {
		var (
			event  model.EnrollmentEvent
			action string
		)
		if err := rows.Scan(
			&event.ID,
			&event.ActivityName,
			&event.Email,
			&action,
			&event.TeacherUsername,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan enrollment event: %w", err)
		}
		event.Action = model.EnrollmentAction(action)
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrollment events: %w", err)
	}

	return events, nil
}
