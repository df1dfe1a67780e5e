package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/nidamehendi/storefront-backend/internal/config"
	"github.com/nidamehendi/storefront-backend/internal/metrics"
	"github.com/nidamehendi/storefront-backend/internal/modules/admin"
	"github.com/nidamehendi/storefront-backend/internal/modules/cart"
	"github.com/nidamehendi/storefront-backend/internal/modules/catalog"
	"github.com/nidamehendi/storefront-backend/internal/modules/contact"
	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
	"github.com/nidamehendi/storefront-backend/internal/modules/media"
	"github.com/nidamehendi/storefront-backend/internal/modules/realtime"
	"github.com/nidamehendi/storefront-backend/internal/modules/wishlist"
	"github.com/nidamehendi/storefront-backend/internal/obs"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("Error loading .env file")
	}
	cfg := config.Load()
	obs.InitLogger()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	obs.Logger.Info("connected to database")

	guestStore, err := cart.NewPebbleGuestStore(cfg.GuestCartDir)
	if err != nil {
		log.Fatal(err)
	}
	defer guestStore.Close()

	reg := metrics.NewRegistry()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Handle("/metrics", reg.Handler())

	// ── Phase 1: Identity ───────────────────────────────────
	accountRepo := identity.NewAccountPostgresRepository(db)
	customerRepo := identity.NewCustomerPostgresRepository(db)
	identityService := identity.NewService(accountRepo, customerRepo, cfg.JWTSecret)
	router.Use(identity.Middleware(identityService))
	identity.NewHandler(identityService).RegisterRoutes(router)

	// ── Phase 2: Catalog ────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService, identity.RequireAdmin).RegisterRoutes(router)

	// ── Phase 3: Cart & Wishlist ────────────────────────────
	memberCartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(memberCartRepo, guestStore, catalogService, reg)
	cart.NewHandler(cartService).RegisterRoutes(router)

	wishlistRepo := wishlist.NewPostgresRepository(db)
	wishlistService := wishlist.NewService(wishlistRepo)
	wishlist.NewHandler(wishlistService).RegisterRoutes(router)

	// Session transitions refresh the cart badge for the new identity.
	identityService.OnChange(func(sess *identity.Session) {
		if sess == nil {
			obs.Logger.Info("session ended")
			return
		}
		count, err := cartService.Count(context.Background(), sess, "")
		if err != nil {
			obs.Logger.Warn("cart badge refresh failed", "error", err.Error())
			return
		}
		obs.Logger.Info("session started", "customer_id", sess.CustomerID.String(), "cart_count", count)
	})

	// ── Phase 4: Admin dashboard & media ────────────────────
	adminRepo := admin.NewPostgresRepository(db)
	admin.NewHandler(admin.NewService(adminRepo), identity.RequireAdmin).RegisterRoutes(router)

	var uploader media.Uploader
	if cfg.ImageBucket != "" {
		gcsClient, err := gcs.NewClient(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		defer gcsClient.Close()
		uploader = media.NewGCSUploader(gcsClient, cfg.ImageBucket)
	}
	media.NewHandler(uploader, identity.RequireAdmin).RegisterRoutes(router)

	// ── Phase 5: Contact forms ──────────────────────────────
	contactService := contact.NewService(nil, cfg.ContactEndpoint, cfg.ContactAccessKey)
	contact.NewHandler(contactService).RegisterRoutes(router)

	// ── Phase 6: Realtime product changes ───────────────────
	hub := realtime.NewHub()
	realtime.NewHandler(hub, reg).RegisterRoutes(router)

	pqListener := pq.NewListener(cfg.DatabaseURL, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			obs.Logger.Warn("realtime transport event", "event", int(ev), "error", err.Error())
		}
	})
	defer pqListener.Close()

	refresh := func() {
		products, err := catalogService.ListProducts(context.Background(), catalog.Filter{
			InStockOnly: true,
			Order:       catalog.OrderFeaturedFirst,
		})
		if err != nil {
			obs.Logger.Error("catalog refresh failed", "error", err.Error())
			return
		}
		obs.Logger.Info("catalog refreshed", "products", len(products))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listener := realtime.NewListener(pqListener, cfg.RealtimeChannel, cfg.RealtimeRetry, hub, refresh, reg)
	listener.Subscribe(ctx)

	// ── Start Server ────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		// No WriteTimeout: /api/v1/events holds SSE streams open.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		obs.Logger.Info("storefront API listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown signal", "signal", s.String())

	listener.Unsubscribe()

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http shutdown error", "error", err.Error())
	}
	obs.Logger.Info("service stopped")
}
