package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/techflames/catalog/internal/article"
	"github.com/techflames/catalog/internal/brand"
	"github.com/techflames/catalog/internal/product"
	"github.com/techflames/catalog/internal/seed"
	"github.com/techflames/catalog/internal/user"
	"github.com/techflames/catalog/internal/wishlist"
)

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Tech Product Platform API running"})
	}
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func diagHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":  "running",
			"database": "not connected",
			"tables":   []string{},
		}
		ctx := c.Request.Context()
		if err := db.Ping(ctx); err != nil {
			resp["database"] = "error: " + err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		rows, err := db.Query(ctx, `SELECT tablename FROM pg_tables WHERE schemaname='public' ORDER BY tablename`)
		if err != nil {
			resp["database"] = "connected but error: " + err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		defer rows.Close()
		tables := []string{}
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err == nil {
				tables = append(tables, t)
			}
		}
		resp["database"] = "connected"
		resp["tables"] = tables
		c.JSON(http.StatusOK, resp)
	}
}

// ===== BRANDS =====

func listBrandsHandler(repo brand.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list brands failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ===== PRODUCTS =====

func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := product.Filter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Search:   c.Query("search"),
			RAM:      c.Query("ram"),
			Storage:  c.Query("storage"),
			Battery:  c.Query("battery"),
			Camera:   c.Query("camera"),
			OS:       c.Query("os_name"),
		}
		var err error
		if f.MinPrice, err = priceParam(c, "minPrice"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if f.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		page, err := intParam(c, "page", 1)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		limit, err := intParam(c, "limit", product.DefaultLimit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		q := product.Query{
			Filter: f,
			Sort:   product.ParseSort(c.Query("sort")),
			Page:   product.Page{Number: page, Limit: limit},
		}
		res, err := repo.List(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list products failed"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func productDetailHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get product failed"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

const compareMax = 4

func compareHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CompareRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		refs := req.IDs
		if len(refs) > compareMax {
			refs = refs[:compareMax]
		}
		out, err := repo.GetByRefs(c.Request.Context(), refs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "compare failed"})
			return
		}
		if out == nil {
			out = []product.Product{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// ===== ARTICLES =====

func listArticlesHandler(repo article.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := intParam(c, "limit", 20)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := repo.List(c.Request.Context(), c.Query("category"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list articles failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ===== AUTH (demo) =====

// loginRequest is the demo find-or-create payload. Password is optional;
// when the stored user has a hash and a password is supplied, it must match.
type loginRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func loginHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		ctx := c.Request.Context()

		u, err := repo.GetByEmail(ctx, req.Email)
		if err == nil {
			if u.PasswordHash != "" && req.Password != "" && !user.CheckPassword(u.PasswordHash, req.Password) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, u)
			return
		}
		if !errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}

		nu := &user.User{
			ID:       uuid.NewString(),
			Email:    req.Email,
			Name:     req.Name,
			Provider: "local",
		}
		if nu.Name == "" {
			nu.Name = "Guest"
		}
		if req.Password != "" {
			hash, err := user.HashPassword(req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
				return
			}
			nu.PasswordHash = hash
		}
		if err := repo.Create(ctx, nu); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.JSON(http.StatusOK, nu)
	}
}

// ===== WISHLIST =====

type wishlistToggleRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

func wishlistHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if _, err := uuid.Parse(userID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		out, err := repo.ListProducts(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list wishlist failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func wishlistToggleHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if _, err := uuid.Parse(req.UserID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		if _, err := uuid.Parse(req.ProductID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
			return
		}
		added, err := repo.Toggle(c.Request.Context(), req.UserID, req.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "toggle failed"})
			return
		}
		status := "removed"
		if added {
			status = "added"
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	}
}

// ===== ADMIN: IMPORT / SEED =====

// importRequest carries bulk catalog data; slugs are derived when absent.
// swagger:model ImportRequest
type importRequest struct {
	Brands   []brand.Brand     `json:"brands"`
	Products []product.Product `json:"products"`
	Articles []article.Article `json:"articles"`
}

func adminImportHandler(products product.Repository, brands brand.Repository, articles article.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req importRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		ctx := c.Request.Context()
		inserted := map[string]int{"brands": 0, "products": 0, "articles": 0}

		for i := range req.Brands {
			b := req.Brands[i]
			if b.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "brand name is required"})
				return
			}
			b.ID = uuid.NewString()
			if b.Slug == "" {
				b.Slug = slugify(b.Name)
			}
			if err := brands.Create(ctx, &b); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "import brands failed"})
				return
			}
			inserted["brands"]++
		}

		for i := range req.Products {
			p := req.Products[i]
			if p.Title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "product title is required"})
				return
			}
			price, err := decimal.NewFromString(p.Price)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid price for %q", p.Title)})
				return
			}
			p.ID = uuid.NewString()
			p.Price = price.String()
			if p.Slug == "" {
				p.Slug = slugify(p.Title)
			}
			if err := products.Create(ctx, &p); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "import products failed"})
				return
			}
			inserted["products"]++
		}

		for i := range req.Articles {
			a := req.Articles[i]
			if a.Title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "article title is required"})
				return
			}
			a.ID = uuid.NewString()
			if a.Slug == "" {
				a.Slug = slugify(a.Title)
			}
			if err := articles.Create(ctx, &a); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "import articles failed"})
				return
			}
			inserted["articles"]++
		}

		c.JSON(http.StatusOK, gin.H{"inserted": inserted})
	}
}

func adminSeedHandler(products product.Repository, brands brand.Repository, articles article.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// only seed an empty catalog
		n, err := products.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "seed failed"})
			return
		}
		if n > 0 {
			c.JSON(http.StatusOK, gin.H{"status": "exists"})
			return
		}

		data := seed.Sample()
		for i := range data.Brands {
			data.Brands[i].ID = uuid.NewString()
			if err := brands.Create(ctx, &data.Brands[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "seed brands failed"})
				return
			}
		}
		for i := range data.Products {
			data.Products[i].ID = uuid.NewString()
			if err := products.Create(ctx, &data.Products[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "seed products failed"})
				return
			}
		}
		for i := range data.Articles {
			data.Articles[i].ID = uuid.NewString()
			if err := articles.Create(ctx, &data.Articles[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "seed articles failed"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "seeded"})
	}
}

// ===== helpers =====

func priceParam(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &d, nil
}

func intParam(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

var slugReplacer = strings.NewReplacer(" ", "-", "/", "-", "_", "-")

func slugify(s string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
