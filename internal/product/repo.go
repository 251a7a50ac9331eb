package product

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List(ctx context.Context, q Query) (*ListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	// GetByRefs resolves a mixed list of ids and slugs.
	GetByRefs(ctx context.Context, refs []string) ([]Product, error)
	Create(ctx context.Context, p *Product) error
	Count(ctx context.Context) (int64, error)
}

type PGRepo struct {
	db   *pgxpool.Pool
	opts ListOptions
}

func NewPGRepo(db *pgxpool.Pool, opts ListOptions) *PGRepo {
	return &PGRepo{db: db, opts: opts}
}

func (r *PGRepo) List(ctx context.Context, q Query) (*ListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	page, limit, _ := q.Page.Clamp(r.opts.MaxLimit)

	sqlStr, args, err := buildList(q, r.opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Product, 0, limit)
	for rows.Next() {
		p, err := ScanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	countSQL, countArgs, err := buildCount(q.Filter, r.opts)
	if err != nil {
		return nil, err
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	return &ListResponse{Items: items, Page: page, Limit: limit, Total: total}, nil
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+SelectColumns+`
		FROM products WHERE slug=$1
	`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	p, err := ScanRow(rows)
	if err != nil {
		return nil, err
	}
	return &p, rows.Err()
}

func (r *PGRepo) GetByRefs(ctx context.Context, refs []string) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ids, slugs []string
	for _, ref := range refs {
		if _, err := uuid.Parse(ref); err == nil {
			ids = append(ids, ref)
		} else {
			slugs = append(slugs, ref)
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+SelectColumns+`
		FROM products
		WHERE id::text = ANY($1) OR slug = ANY($2)
	`, ids, slugs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := ScanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	specsJSON, err := json.Marshal(p.Specs)
	if err != nil {
		return err
	}
	sourcesJSON, err := json.Marshal(p.PriceSources)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO products
			(id, title, slug, category, brand, images, thumbnail, price,
			 price_sources, rating, popularity, specs, tags, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9,$10,$11,$12,$13,NOW(),NOW())
	`, p.ID, p.Title, p.Slug, p.Category, p.Brand, p.Images, p.Thumbnail, p.Price,
		sourcesJSON, p.Rating, p.Popularity, specsJSON, p.Tags)
	return err
}

func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

// ScanRow reads one row in SelectColumns order. The id::text selection
// is the public-id projection: internal uuids surface as plain string ids.
func ScanRow(rows pgx.Rows) (Product, error) {
	var (
		p           Product
		specsJSON   []byte
		sourcesJSON []byte
	)
	err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Category, &p.Brand, &p.Images,
		&p.Thumbnail, &p.Price, &sourcesJSON, &p.Rating, &p.Popularity,
		&specsJSON, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	if len(specsJSON) > 0 {
		if err := json.Unmarshal(specsJSON, &p.Specs); err != nil {
			return Product{}, err
		}
	}
	if len(sourcesJSON) > 0 {
		if err := json.Unmarshal(sourcesJSON, &p.PriceSources); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}
