package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidState = errors.New("order not in required status")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context, status string) ([]Order, error)
	Transition(ctx context.Context, id, from, to string) error
	Deliver(ctx context.Context, id string, at time.Time) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, delivery_address, mobile_number, alt_mobile_number, payment_method, total_price, status, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
  `, o.ID, o.DeliveryAddress, o.MobileNumber, o.AltMobileNumber, o.PaymentMethod, o.TotalPrice, o.Status); err != nil {
		return err
	}

	for _, it := range o.CartItems {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (order_id, item_id, name, price, quantity, image, category)
      VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, o.ID, it.ID, it.Name, it.Price, it.Quantity, it.Image, it.Category); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List returns orders newest first, each with its cart items embedded.
// An empty status returns every order.
func (r *PGRepo) List(ctx context.Context, status string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, delivery_address, mobile_number, alt_mobile_number, payment_method,
           total_price::float8, status, created_at, delivered_at
    FROM orders
    WHERE ($1 = '' OR status = $1)
    ORDER BY created_at DESC
  `, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	var ids []string
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.DeliveryAddress, &o.MobileNumber, &o.AltMobileNumber,
			&o.PaymentMethod, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.DeliveredAt); err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].CartItems = items[out[i].ID]
	}
	return out, nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]CartItem, error) {
	rows, err := r.db.Query(ctx, `
    SELECT order_id, item_id, name, price::float8, quantity, image, category
    FROM order_items WHERE order_id = ANY($1)
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]CartItem, len(orderIDs))
	for rows.Next() {
		var oid string
		var it CartItem
		if err := rows.Scan(&oid, &it.ID, &it.Name, &it.Price, &it.Quantity, &it.Image, &it.Category); err != nil {
			return nil, err
		}
		items[oid] = append(items[oid], it)
	}
	return items, rows.Err()
}

// Transition moves an order from one status to another with a single
// conditional update, so two racing requests cannot both win.
func (r *PGRepo) Transition(ctx context.Context, id, from, to string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET status = $3
    WHERE id = $1 AND status = $2
  `, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id)
	}
	return nil
}

// Deliver is the Accepted -> Delivered transition; it also stamps
// delivered_at, which no other transition touches.
func (r *PGRepo) Deliver(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET status = $2, delivered_at = $3
    WHERE id = $1 AND status = $4
  `, id, StatusDelivered, at, StatusAccepted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id)
	}
	return nil
}

// transitionFailure tells a missing order apart from one in the wrong
// status after a conditional update matched no rows.
func (r *PGRepo) transitionFailure(ctx context.Context, id string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidState
}
