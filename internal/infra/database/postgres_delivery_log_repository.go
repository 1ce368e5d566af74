package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"event_notifier/internal/domain/notify"

	"github.com/google/uuid"
)

// PostgresDeliveryLogRepository persists channel results for auditing. The
// table is append-only; nothing in the notification path reads it back.
type PostgresDeliveryLogRepository struct {
	db *sql.DB
}

func NewPostgresDeliveryLogRepository(db *sql.DB) *PostgresDeliveryLogRepository {
	return &PostgresDeliveryLogRepository{db: db}
}

func (r *PostgresDeliveryLogRepository) RecordResults(ctx context.Context, eventID int64, results []notify.ChannelResult) error {
	if len(results) == 0 {
		return nil
	}

	// Single multi-row INSERT so one sweep doesn't issue a round-trip per result.
	var sb strings.Builder
	sb.WriteString(`INSERT INTO delivery_log (id, event_id, supplier_id, channel, status, detail, created_at) VALUES `)
	args := make([]any, 0, len(results)*6)
	for i, res := range results {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, uuid.NewString(), eventID, res.SupplierID, string(res.Channel), string(res.Status), res.Detail)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("error recording delivery results for event %d: %w", eventID, err)
	}
	return nil
}
