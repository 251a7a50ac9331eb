// Package product holds the catalog's product model, the listing query
// builder and the PostgreSQL repository.
package product

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// Sort names one of the supported listing orders.
type Sort string

const (
	SortNone       Sort = ""
	SortPopularity Sort = "popularity"
	SortLatest     Sort = "latest"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
)

// ParseSort maps a query parameter to a Sort. Unknown values fall back to
// SortNone (natural order), matching the listing contract.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPopularity, SortLatest, SortPriceAsc, SortPriceDesc:
		return Sort(s)
	}
	return SortNone
}

// OrderBy returns the ORDER BY clause for the sort, or ok=false when the
// collection's natural order applies.
func (s Sort) OrderBy() (string, bool) {
	switch s {
	case SortPopularity:
		return "popularity DESC", true
	case SortLatest:
		return "created_at DESC", true
	case SortPriceAsc:
		return "price ASC", true
	case SortPriceDesc:
		return "price DESC", true
	}
	return "", false
}

// Filter is the set of optional listing criteria. Zero-valued fields impose
// no constraint; present fields are ANDed, except Search which ORs across
// title, brand and tags.
type Filter struct {
	Category string
	Brand    string
	Search   string

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	RAM     string
	Storage string
	Battery string
	Camera  string
	OS      string
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

const DefaultLimit = 20

// Clamp normalizes the page window: page numbers below 1 become 1, a
// non-positive limit becomes DefaultLimit, and limits above maxLimit are
// capped there.
func (p Page) Clamp(maxLimit int) (page, limit, offset int) {
	page = p.Number
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	offset = (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return page, limit, offset
}

// Conditions composes the filter into one AND-group of predicates. An empty
// filter renders to a match-all condition. When escape is true, LIKE
// wildcards in user text are treated as literals; otherwise they pass
// through unchanged, as the reference behavior requires.
func (f Filter) Conditions(escape bool) sq.Sqlizer {
	and := sq.And{}
	if f.Category != "" {
		and = append(and, matchWhole("category", f.Category, escape))
	}
	if f.Brand != "" {
		and = append(and, matchWhole("brand", f.Brand, escape))
	}
	if f.MinPrice != nil {
		and = append(and, sq.Expr("price >= ?::numeric", f.MinPrice.String()))
	}
	if f.MaxPrice != nil {
		and = append(and, sq.Expr("price <= ?::numeric", f.MaxPrice.String()))
	}
	for _, sp := range []struct {
		field string
		value string
	}{
		{"ram", f.RAM},
		{"storage", f.Storage},
		{"battery", f.Battery},
		{"camera", f.Camera},
		{"os", f.OS},
	} {
		if sp.value != "" {
			and = append(and, matchPart("specs->>'"+sp.field+"'", sp.value, escape))
		}
	}
	if f.Search != "" {
		and = append(and, sq.Or{
			matchPart("title", f.Search, escape),
			matchPart("brand", f.Search, escape),
			matchAnyTag(f.Search, escape),
		})
	}
	return and
}

// matchWhole is a case-insensitive match anchored on the whole field value.
func matchWhole(column, value string, escape bool) sq.Sqlizer {
	return sq.Expr(column+" ILIKE ?", likeText(value, escape))
}

// matchPart is a case-insensitive substring match.
func matchPart(column, value string, escape bool) sq.Sqlizer {
	return sq.Expr(column+" ILIKE ?", "%"+likeText(value, escape)+"%")
}

// matchAnyTag matches each tag individually, so the pattern cannot span
// two adjacent tags.
func matchAnyTag(value string, escape bool) sq.Sqlizer {
	return sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE ?)",
		"%"+likeText(value, escape)+"%")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likeText(v string, escape bool) string {
	if !escape {
		return v
	}
	return likeEscaper.Replace(v)
}

// Query is one listing invocation: criteria, order and page window.
type Query struct {
	Filter Filter
	Sort   Sort
	Page   Page
}

// ListOptions tune how listing queries are built.
type ListOptions struct {
	// EscapePatterns treats LIKE wildcards in user input as literals.
	EscapePatterns bool
	// MaxLimit caps the page size; 0 means DefaultLimit-only clamping.
	MaxLimit int
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const SelectColumns = `id::text, title, slug, category, brand, images, thumbnail,
	price::text, price_sources, rating, popularity, specs, tags, created_at, updated_at`

// buildList renders the page query for the products table.
func buildList(q Query, o ListOptions) (string, []any, error) {
	_, limit, offset := q.Page.Clamp(o.MaxLimit)
	b := psql.Select(SelectColumns).
		From("products").
		Where(q.Filter.Conditions(o.EscapePatterns))
	if clause, ok := q.Sort.OrderBy(); ok {
		b = b.OrderBy(clause)
	}
	return b.Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
}

// buildCount renders the total-count query for the same filter; the count
// ignores the page window.
func buildCount(f Filter, o ListOptions) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("products").
		Where(f.Conditions(o.EscapePatterns)).
		ToSql()
}
