package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techflames/catalog/internal/article"
	"github.com/techflames/catalog/internal/brand"
	"github.com/techflames/catalog/internal/config"
	"github.com/techflames/catalog/internal/httpx"
	"github.com/techflames/catalog/internal/product"
	"github.com/techflames/catalog/internal/user"
	"github.com/techflames/catalog/internal/wishlist"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[catalog] connect postgres: %v", err)
	}
	defer pool.Close()

	products := product.NewPGRepo(pool, product.ListOptions{
		EscapePatterns: cfg.EscapeSearch,
		MaxLimit:       cfg.MaxPageLimit,
	})
	brands := brand.NewPGRepo(pool)
	articles := article.NewPGRepo(pool)
	users := user.NewPGRepo(pool)
	wishlists := wishlist.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS())

	r.GET("/", rootHandler())
	r.GET("/api/health", healthHandler())
	r.GET("/api/diag", diagHandler(pool))

	r.GET("/api/brands", listBrandsHandler(brands))
	r.GET("/api/products", listProductsHandler(products))
	r.GET("/api/products/:slug", productDetailHandler(products))
	r.POST("/api/compare", compareHandler(products))
	r.GET("/api/articles", listArticlesHandler(articles))

	r.POST("/api/auth/login", loginHandler(users))
	r.GET("/api/wishlist", wishlistHandler(wishlists))
	r.POST("/api/wishlist/toggle", wishlistToggleHandler(wishlists))

	r.POST("/api/admin/import", adminImportHandler(products, brands, articles))
	r.POST("/api/admin/seed", adminSeedHandler(products, brands, articles))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Printf("[catalog] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[catalog] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[catalog] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[catalog] shutdown: %v", err)
	}
}
