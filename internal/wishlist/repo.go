// Package wishlist stores per-user product bookmarks and joins them back to
// full product records.
package wishlist

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techflames/catalog/internal/product"
)

type Repository interface {
	// ListProducts returns the wishlisted products for a user, oldest first.
	ListProducts(ctx context.Context, userID string) ([]product.Product, error)
	// Toggle flips membership: returns true when the entry was added and
	// false when an existing one was removed.
	Toggle(ctx context.Context, userID, productID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListProducts(ctx context.Context, userID string) ([]product.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+prefixColumns()+`
		FROM wishlists w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1::uuid
		ORDER BY w.created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []product.Product{}
	for rows.Next() {
		p, err := product.ScanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM wishlists WHERE user_id = $1::uuid AND product_id = $2::uuid
	`, userID, productID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO wishlists (id, user_id, product_id, created_at)
		VALUES ($1,$2::uuid,$3::uuid,NOW())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, uuid.NewString(), userID, productID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// prefixColumns qualifies product.SelectColumns with the join alias.
func prefixColumns() string {
	cols := strings.Split(product.SelectColumns, ",")
	for i, c := range cols {
		cols[i] = "p." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}
