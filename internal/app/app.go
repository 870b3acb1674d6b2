package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/settings"
	"github.com/xenking/storefront/internal/events"
	"github.com/xenking/storefront/internal/gateway/razorpay"
	"github.com/xenking/storefront/internal/handler"
	"github.com/xenking/storefront/internal/invoice"
	"github.com/xenking/storefront/internal/livefeed"
	"github.com/xenking/storefront/internal/mailer"
	"github.com/xenking/storefront/internal/storage/postgres"
	"github.com/xenking/storefront/pkg/health"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	fees, err := cfg.Fees.Fees()
	if err != nil {
		return err
	}

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Repositories.
	cartRepo := postgres.NewCartRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	// Outbound integrations.
	hub := livefeed.NewHub(nil)
	notifications := notification.NewService(notificationRepo, hub)

	invoices, err := invoice.Open(ctx, cfg.Invoices.BucketURL, cfg.Invoices.PublicBaseURL)
	if err != nil {
		return errors.Wrap(err, "open invoice storage")
	}
	defer func() { _ = invoices.Close() }()

	orderOpts := []order.Option{
		order.WithInvoiceStore(invoices),
		order.WithMeterProvider(m.MeterProvider()),
		order.WithTracerProvider(m.TracerProvider()),
	}
	if cfg.Payment.VerifySignature {
		orderOpts = append(orderOpts, order.WithSignatureVerifier(razorpay.NewVerifier(cfg.Payment.KeySecret)))
	}
	if cfg.Email.APIKey != "" {
		m, err := mailer.NewResend(mailer.Config{
			BaseURL:      cfg.Email.BaseURL,
			APIKey:       cfg.Email.APIKey,
			From:         cfg.Email.From,
			BCC:          cfg.Email.BCC,
			StoreName:    cfg.Email.StoreName,
			SupportPhone: cfg.Email.SupportPhone,
			Timeout:      cfg.Email.Timeout,
		})
		if err != nil {
			return errors.Wrap(err, "create mailer")
		}
		orderOpts = append(orderOpts, order.WithMailer(m))
	} else {
		lg.Warn("Email API key is not set, confirmation emails are disabled")
	}
	if cfg.PubSub.Project != "" {
		publisher, err := events.NewPubSub(ctx, cfg.PubSub.Project, cfg.PubSub.Topic)
		if err != nil {
			return errors.Wrap(err, "create event publisher")
		}
		defer func() { _ = publisher.Close() }()
		orderOpts = append(orderOpts, order.WithPublisher(publisher))
	} else {
		orderOpts = append(orderOpts, order.WithPublisher(events.Nop{}))
	}

	gateway := razorpay.New(razorpay.Config{
		BaseURL:   cfg.Payment.BaseURL,
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
		Timeout:   cfg.Payment.Timeout,
	})

	// Domain services. Saved fee settings override the configured ones.
	feeSettings := settings.NewService(settingsRepo, fees)
	couponValidator := coupon.NewRepoValidator(couponRepo)
	orderService := order.NewService(orderRepo, couponValidator, notifications, feeSettings, orderOpts...)

	// HTTP handlers.
	h := handler.NewHandler(handler.Deps{
		Carts:         cart.NewService(cartRepo, productRepo, couponValidator, feeSettings),
		Coupons:       coupon.NewService(couponRepo, notifications),
		CouponCheck:   couponValidator,
		Orders:        orderService,
		Payments:      payment.NewService(gateway, cfg.Payment.Currency),
		Products:      product.NewService(productRepo, notifications),
		Notifications: notifications,
		Addresses:     address.NewService(addressRepo),
		Settings:      feeSettings,
		LiveFeed:      hub,
		Files:         invoices,
	})
	sec := handler.NewSecurityHandler(cfg.Auth.JWTSecret)

	oasServer, err := oas.NewServer(h, sec,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	if err != nil {
		return errors.Wrap(err, "create server")
	}

	// Mux: health endpoints + API routes on one server.
	mux := h.Routes(oasServer, sec)
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization"},
				ExposeHeaders:    []string{httpmiddleware.HeaderRequestID, "Content-Disposition"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("storefront-api", m),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
