package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool used by the storage. Declared as an
// interface so tests can substitute a mock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type challanRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ repository.Factory = (*Storage)(nil)

// Orders returns the order repository adapter.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Challans returns the challan log repository adapter.
func (s *Storage) Challans() repository.ChallanRepository {
	return &challanRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS order_seq`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            client TEXT NOT NULL,
            manufacturer TEXT NOT NULL,
            product TEXT NOT NULL,
            quantity BIGINT NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            created_on DATE NOT NULL,
            timeline JSONB NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS challans (
            id UUID PRIMARY KEY,
            challan_type TEXT NOT NULL,
            order_ids JSONB NOT NULL,
            generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_on ON orders(created_on DESC, id DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = "id, client, manufacturer, product, quantity, status, created_on, timeline"

// --- OrderRepository implementation ---

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_on DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) error {
	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}

	const query = `INSERT INTO orders (id, client, manufacturer, product, quantity, status, created_on, timeline)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.Client, order.Manufacturer, order.Product,
		order.Quantity, string(order.Status), order.Date, timeline)
	return err
}

// Update replaces the full order document; the store always writes the
// complete record after a mutation.
func (r *orderRepository) Update(ctx context.Context, order model.Order) error {
	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}

	const query = `UPDATE orders
                   SET client=$2, manufacturer=$3, product=$4, quantity=$5, status=$6, timeline=$7
                   WHERE id=$1`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.Client, order.Manufacturer, order.Product,
		order.Quantity, string(order.Status), timeline)
	return err
}

// Delete is idempotent: deleting an absent id affects zero rows and is not
// an error.
func (r *orderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

// NextID draws the next value from a server-side sequence, so identifiers
// stay unique across concurrent creators and deletions.
func (r *orderRepository) NextID(ctx context.Context) (string, error) {
	var seq int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT nextval('order_seq')`).Scan(&seq); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD%03d", seq), nil
}

func scanOrder(rows pgx.Rows) (model.Order, error) {
	var (
		order    model.Order
		status   string
		timeline []byte
	)
	if err := rows.Scan(&order.ID, &order.Client, &order.Manufacturer, &order.Product,
		&order.Quantity, &status, &order.Date, &timeline); err != nil {
		return model.Order{}, err
	}
	order.Status = model.OrderStatus(status)
	if err := json.Unmarshal(timeline, &order.Timeline); err != nil {
		return model.Order{}, fmt.Errorf("decode timeline for %s: %w", order.ID, err)
	}
	return order, nil
}

// --- ChallanRepository implementation ---

func (r *challanRepository) Log(ctx context.Context, challan model.Challan) error {
	orderIDs, err := json.Marshal(challan.OrderIDs)
	if err != nil {
		return fmt.Errorf("encode order ids: %w", err)
	}

	const query = `INSERT INTO challans (id, challan_type, order_ids, generated_at) VALUES ($1, $2, $3, $4)`
	_, err = r.storage.pool.Exec(ctx, query, challan.ID, string(challan.Type), orderIDs, challan.GeneratedAt)
	return err
}

func (r *challanRepository) List(ctx context.Context) ([]model.Challan, error) {
	const query = `SELECT id, challan_type, order_ids, generated_at FROM challans ORDER BY generated_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Challan
	for rows.Next() {
		var (
			challan  model.Challan
			typ      string
			orderIDs []byte
		)
		if err := rows.Scan(&challan.ID, &typ, &orderIDs, &challan.GeneratedAt); err != nil {
			return nil, err
		}
		challan.Type = model.ChallanType(typ)
		if err := json.Unmarshal(orderIDs, &challan.OrderIDs); err != nil {
			return nil, fmt.Errorf("decode order ids for %s: %w", challan.ID, err)
		}
		result = append(result, challan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
