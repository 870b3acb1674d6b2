package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/storage/postgres"
)

type catalogJSON struct {
	Categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"categories"`
	Products []productJSON `json:"products"`
	Coupons  []couponJSON  `json:"coupons"`
}

type productJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Price      string          `json:"price"`
	MRP        string          `json:"mrp"`
	TaxRate    decimal.Decimal `json:"taxRate"`
	Stock      int             `json:"stock"`
	Live       bool            `json:"isLive"`
	Images     []string        `json:"images"`
	Variants   []struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Images []string `json:"images"`
	} `json:"variants"`
}

type couponJSON struct {
	Code       string          `json:"code"`
	Type       string          `json:"type"`
	Value      decimal.Decimal `json:"value"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Active     bool            `json:"isActive"`
	UsageLimit *int            `json:"usageLimit"`
}

func main() {
	var (
		databaseURL string
		catalogFile string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&catalogFile, "catalog-file", "db/seed/catalog.json", "path to catalog JSON file")
	flag.Parse()

	_ = godotenv.Load()
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, catalogFile); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, catalogFile string) error {
	slog.Info("reading catalog file", slog.String("path", catalogFile))

	data, err := os.ReadFile(catalogFile)
	if err != nil {
		return errors.Wrap(err, "read catalog file")
	}
	var catalog catalogJSON
	if err := json.Unmarshal(data, &catalog); err != nil {
		return errors.Wrap(err, "parse catalog JSON")
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.Migrate(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	products := postgres.NewProductRepository(pool)
	for _, c := range catalog.Categories {
		if err := products.UpsertCategory(ctx, postgres.Category{ID: c.ID, Name: c.Name, Slug: c.Slug}); err != nil {
			return err
		}
		slog.Info("upserted category", slog.String("id", c.ID))
	}

	if err := seedProducts(ctx, products, catalog.Products); err != nil {
		return errors.Wrap(err, "seed products")
	}

	if err := seedCoupons(ctx, postgres.NewCouponRepository(pool), catalog.Coupons); err != nil {
		return errors.Wrap(err, "seed coupons")
	}

	return nil
}

func seedProducts(ctx context.Context, repo *postgres.ProductRepository, list []productJSON) error {
	slog.Info("upserting products", slog.Int("count", len(list)))

	for _, pj := range list {
		if _, err := pricing.ParsePrice(pj.Price); err != nil {
			return errors.Wrapf(err, "product %s", pj.ID)
		}

		p := &product.Product{
			ID:           pj.ID,
			Name:         pj.Name,
			CategoryID:   pj.CategoryID,
			DisplayPrice: pj.Price,
			MRP:          pj.MRP,
			TaxRate:      pj.TaxRate,
			Stock:        pj.Stock,
			Live:         pj.Live,
			Images:       pj.Images,
		}
		for _, v := range pj.Variants {
			p.Variants = append(p.Variants, product.Variant{ID: v.ID, Name: v.Name, Images: v.Images})
		}

		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}

		slog.Info("upserted product", slog.String("id", p.ID), slog.String("name", p.Name))
	}

	return nil
}

func seedCoupons(ctx context.Context, repo *postgres.CouponRepository, list []couponJSON) error {
	slog.Info("seeding coupons", slog.Int("count", len(list)))

	coupons := make([]coupon.Coupon, 0, len(list))
	for _, cj := range list {
		typ := pricing.DiscountType(cj.Type)
		if !typ.Valid() {
			return errors.Errorf("coupon %s: unknown discount type %q", cj.Code, cj.Type)
		}
		coupons = append(coupons, coupon.Coupon{
			ID:         uuid.NewString(),
			Code:       coupon.NormalizeCode(cj.Code),
			Type:       typ,
			Value:      cj.Value,
			ExpiresAt:  cj.ExpiresAt,
			Active:     cj.Active,
			UsageLimit: cj.UsageLimit,
		})
	}

	written, err := repo.Upsert(ctx, coupons)
	if err != nil {
		return err
	}

	slog.Info("upserted coupons", slog.Int64("rows", written))
	return nil
}
