package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"event_notifier/internal/domain/event"
)

var ErrEventNotFound = fmt.Errorf("event not found")

type PostgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id int64) (*event.Event, error) {
	query := `SELECT id, title, event_date, start_time, end_time, location, participant_count, created_at, updated_at
               FROM events WHERE id = $1`
	ev := &event.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ev.ID, &ev.Title, &ev.EventDate, &ev.StartTime, &ev.EndTime,
		&ev.Location, &ev.ParticipantCount, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}
	return ev, nil
}

func (r *PostgresEventRepository) ListByDate(ctx context.Context, day time.Time) ([]*event.Event, error) {
	query := `SELECT id, title, event_date, start_time, end_time, location, participant_count, created_at, updated_at
               FROM events WHERE event_date = $1 ORDER BY start_time, id`

	rows, err := r.db.QueryContext(ctx, query, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("error listing events by date: %w", err)
	}
	defer rows.Close()

	events := make([]*event.Event, 0)
	for rows.Next() {
		ev := &event.Event{}
		if err := rows.Scan(
			&ev.ID, &ev.Title, &ev.EventDate, &ev.StartTime, &ev.EndTime,
			&ev.Location, &ev.ParticipantCount, &ev.CreatedAt, &ev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}
