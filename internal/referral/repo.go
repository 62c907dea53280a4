package referral

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("referral not found")
	ErrNotCompleted   = errors.New("referral not completed yet")
	ErrAlreadyClaimed = errors.New("reward already claimed")
)

type Repository interface {
	Create(ctx context.Context, ref *Referral) error
	List(ctx context.Context) ([]Referral, error)
	CompletePending(ctx context.Context, code, discountCode string) (bool, error)
	Claim(ctx context.Context, id, discountCode string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, ref *Referral) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
    INSERT INTO referrals (id, referrer_id, referral_code, referred_email, status, reward, discount_code, claimed, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
  `, ref.ID, ref.ReferrerID, ref.ReferralCode, ref.ReferredEmail, ref.Status, ref.Reward, ref.DiscountCode, ref.Claimed)
	return err
}

// List returns every referral record. There is no referrer scoping yet;
// referrer identity is still a placeholder upstream.
func (r *PGRepo) List(ctx context.Context) ([]Referral, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, referrer_id, referral_code, referred_email, status, reward, discount_code, claimed, created_at
    FROM referrals ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Referral
	for rows.Next() {
		var ref Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferralCode, &ref.ReferredEmail,
			&ref.Status, &ref.Reward, &ref.DiscountCode, &ref.Claimed, &ref.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// CompletePending marks the Pending referral carrying the given code as
// Completed and assigns it a discount code. It reports whether a
// referral was actually completed; an unknown or already-completed code
// is not an error.
func (r *PGRepo) CompletePending(ctx context.Context, code, discountCode string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE referrals SET status = $2, discount_code = $3
    WHERE referral_code = $1 AND status = $4
  `, code, StatusCompleted, discountCode, StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Claim flips claimed exactly once, regenerating the discount code.
// The update is conditional on status and the claimed flag so two
// racing claims cannot both succeed.
func (r *PGRepo) Claim(ctx context.Context, id, discountCode string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE referrals SET claimed = TRUE, discount_code = $2
    WHERE id = $1 AND status = $3 AND claimed = FALSE
  `, id, discountCode, StatusCompleted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status string
	var claimed bool
	err = r.db.QueryRow(ctx, `SELECT status, claimed FROM referrals WHERE id=$1`, id).Scan(&status, &claimed)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != StatusCompleted {
		return ErrNotCompleted
	}
	return ErrAlreadyClaimed
}
