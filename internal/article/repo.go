package article

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// List returns newest-first articles, optionally restricted to one
	// category (case-insensitive whole-value match).
	List(ctx context.Context, category string, limit int) ([]Article, error)
	Create(ctx context.Context, a *Article) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context, category string, limit int) ([]Article, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, `
		SELECT id::text, title, slug, cover_image, excerpt, content, author,
		       category, published_at, created_at
		FROM articles
		WHERE ($1 = '' OR category ILIKE $1)
		ORDER BY created_at DESC
		LIMIT $2
	`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Article{}
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.CoverImage, &a.Excerpt,
			&a.Content, &a.Author, &a.Category, &a.PublishedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, a *Article) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if a.Category == "" {
		a.Category = "news"
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO articles
			(id, title, slug, cover_image, excerpt, content, author, category, published_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
	`, a.ID, a.Title, a.Slug, a.CoverImage, a.Excerpt, a.Content, a.Author, a.Category, a.PublishedAt)
	return err
}
