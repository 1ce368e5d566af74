package database

import (
	"context"
	"database/sql"
	"fmt"

	"event_notifier/internal/domain/supplier"
)

var ErrSupplierNotFound = fmt.Errorf("supplier not found")

type PostgresSupplierRepository struct {
	db *sql.DB
}

func NewPostgresSupplierRepository(db *sql.DB) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{db: db}
}

func (r *PostgresSupplierRepository) GetByID(ctx context.Context, id int64) (*supplier.Supplier, error) {
	query := `SELECT id, name, phone, email, push_subscription, is_active, created_at, updated_at
               FROM suppliers WHERE id = $1`
	s := &supplier.Supplier{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.PushSubscription,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("error getting supplier by ID: %w", err)
	}
	return s, nil
}

func (r *PostgresSupplierRepository) ListActive(ctx context.Context) ([]*supplier.Supplier, error) {
	query := `SELECT id, name, phone, email, push_subscription, is_active, created_at, updated_at
               FROM suppliers WHERE is_active = TRUE ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing active suppliers: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func (r *PostgresSupplierRepository) ListByEvent(ctx context.Context, eventID int64) ([]*supplier.Supplier, error) {
	query := `SELECT s.id, s.name, s.phone, s.email, s.push_subscription, s.is_active, s.created_at, s.updated_at
               FROM suppliers s
               JOIN event_suppliers es ON es.supplier_id = s.id
               WHERE es.event_id = $1 AND s.is_active = TRUE
               ORDER BY s.name`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("error listing suppliers for event %d: %w", eventID, err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func scanSuppliers(rows *sql.Rows) ([]*supplier.Supplier, error) {
	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		s := &supplier.Supplier{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Phone, &s.Email, &s.PushSubscription,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suppliers: %w", err)
	}
	return suppliers, nil
}
