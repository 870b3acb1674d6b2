package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"math/bits"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/storage/postgres"
)

const (
	bloomFPR      = 0.001
	progressEvery = 1_000_000
	maxFiles      = bits.UintSize
	batchSize     = 1000
	writers       = 4
)

// options describe the coupon rule shared by every ingested code.
type options struct {
	dataDir     string
	databaseURL string
	minFiles    int
	capacity    uint
	minLen      int
	maxLen      int
	rule        coupon.Coupon
}

// fileResult holds the codes of a single file that passed pass 2.
type fileResult struct {
	candidates map[string]uint
}

func main() {
	var (
		opts       options
		typ        string
		value      string
		expires    string
		usageLimit int
	)

	flag.StringVar(&opts.dataDir, "data-dir", "data", "directory containing gzip-compressed code lists (*.gz)")
	flag.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.IntVar(&opts.minFiles, "min-files", 1, "keep codes listed in at least this many files")
	flag.UintVar(&opts.capacity, "capacity", 10_000_000, "expected codes per file, sizes the bloom filters")
	flag.IntVar(&opts.minLen, "min-len", 4, "minimum code length")
	flag.IntVar(&opts.maxLen, "max-len", 32, "maximum code length")
	flag.StringVar(&typ, "type", string(pricing.DiscountPercent), "discount type: PERCENT or FIXED")
	flag.StringVar(&value, "value", "10", "discount value")
	flag.StringVar(&expires, "expires", time.Now().AddDate(0, 3, 0).Format(time.DateOnly), "expiry date (YYYY-MM-DD)")
	flag.IntVar(&usageLimit, "usage-limit", 1, "uses per code; 0 means unlimited")
	flag.Parse()

	_ = godotenv.Load()
	if opts.databaseURL == "" {
		opts.databaseURL = os.Getenv("DATABASE_URL")
	}
	if opts.databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	rule, err := parseRule(typ, value, expires, usageLimit)
	if err != nil {
		slog.Error("invalid coupon rule", slog.String("error", err.Error()))
		os.Exit(1)
	}
	opts.rule = rule

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		slog.Error("coupon ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("coupon ingest completed successfully")
}

func parseRule(typ, value, expires string, usageLimit int) (coupon.Coupon, error) {
	c := coupon.Coupon{Type: pricing.DiscountType(strings.ToUpper(typ)), Active: true}
	if !c.Type.Valid() {
		return c, errors.Errorf("unknown discount type %q", typ)
	}
	v, err := decimal.NewFromString(value)
	if err != nil || !v.IsPositive() {
		return c, errors.Errorf("invalid value %q", value)
	}
	if c.Type == pricing.DiscountPercent && v.GreaterThan(decimal.NewFromInt(100)) {
		return c, errors.Errorf("percent value %s exceeds 100", value)
	}
	c.Value = v

	day, err := time.Parse(time.DateOnly, expires)
	if err != nil {
		return c, errors.Wrap(err, "parse expiry")
	}
	c.ExpiresAt = day.Add(24*time.Hour - time.Second)

	if usageLimit > 0 {
		c.UsageLimit = &usageLimit
	}
	return c, nil
}

func run(ctx context.Context, opts options) error {
	files, err := filepath.Glob(filepath.Join(opts.dataDir, "*.gz"))
	if err != nil {
		return errors.Wrap(err, "list code files")
	}
	switch {
	case len(files) == 0:
		return errors.Errorf("no *.gz files in %s", opts.dataDir)
	case len(files) > maxFiles:
		return errors.Errorf("too many files: %d, at most %d", len(files), maxFiles)
	case opts.minFiles > len(files):
		return errors.Errorf("min-files %d exceeds the %d files found", opts.minFiles, len(files))
	}
	slices.Sort(files)

	// Pass 1: Build bloom filters concurrently. A single required file
	// needs no cross-file lookup.
	var filters []*bloom.BloomFilter
	if opts.minFiles > 1 {
		slog.Info("pass 1: building bloom filters", slog.Int("files", len(files)))

		filters, err = buildBloomFilters(ctx, opts, files)
		if err != nil {
			return errors.Wrap(err, "build bloom filters")
		}
	}

	// Pass 2: Collect the codes listed in enough files.
	slog.Info("pass 2: collecting codes", slog.Int("min_files", opts.minFiles))

	codes, err := collectCodes(ctx, opts, files, filters)
	if err != nil {
		return errors.Wrap(err, "collect codes")
	}

	slog.Info("codes selected", slog.Int("count", len(codes)))

	if len(codes) == 0 {
		slog.Info("no codes to insert")
		return nil
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, opts.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := writeCoupons(ctx, postgres.NewCouponRepository(pool), opts.rule, codes); err != nil {
		return errors.Wrap(err, "write coupons to database")
	}

	return nil
}

// normalize returns the canonical code, or "" for lines that are not codes.
func normalize(line string, opts options) string {
	code := coupon.NormalizeCode(line)
	if len(code) < opts.minLen || len(code) > opts.maxLen {
		return ""
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return ""
		}
	}
	return code
}

// buildBloomFilters creates one bloom filter per file, concurrently.
func buildBloomFilters(ctx context.Context, opts options, files []string) ([]*bloom.BloomFilter, error) {
	filters := make([]*bloom.BloomFilter, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			filter := bloom.NewWithEstimates(opts.capacity, bloomFPR)
			var count uint64

			if err := streamGzFile(ctx, f, func(line string) {
				code := normalize(line, opts)
				if code == "" {
					return
				}
				filter.AddString(code)
				count++
				if count%progressEvery == 0 {
					slog.Info("pass 1 progress", slog.String("file", f), slog.Uint64("codes", count))
				}
			}); err != nil {
				return errors.Wrapf(err, "build filter for %s", f)
			}

			slog.Info("pass 1 complete", slog.String("file", f), slog.Uint64("total_codes", count))
			filters[i] = filter
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filters, nil
}

// collectCodes re-streams each file and keeps the codes that the bloom
// filters place in at least minFiles files. The file bitmasks are exact, so
// a false positive of a filter never selects a code on its own.
func collectCodes(ctx context.Context, opts options, files []string, filters []*bloom.BloomFilter) ([]string, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			candidates := make(map[string]uint)
			fileBit := uint(1) << uint(i)

			if err := streamGzFile(ctx, f, func(line string) {
				code := normalize(line, opts)
				if code == "" {
					return
				}
				seen := 1
				for j, filter := range filters {
					if j != i && filter.TestString(code) {
						seen++
					}
				}
				if seen >= opts.minFiles {
					candidates[code] |= fileBit
				}
			}); err != nil {
				return errors.Wrapf(err, "scan %s", f)
			}

			slog.Info("pass 2 complete", slog.String("file", f), slog.Int("candidates", len(candidates)))
			results[i] = fileResult{candidates: candidates}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge bitmasks from all files.
	merged := make(map[string]uint)
	for _, r := range results {
		for code, mask := range r.candidates {
			merged[code] |= mask
		}
	}

	var codes []string
	for code, mask := range merged {
		if bits.OnesCount(mask) >= opts.minFiles {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes, nil
}

// streamGzFile opens a gzip-compressed file and calls fn for each line.
func streamGzFile(ctx context.Context, path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}

// writeCoupons upserts the codes in batches, a few batches at a time.
func writeCoupons(ctx context.Context, repo *postgres.CouponRepository, rule coupon.Coupon, codes []string) error {
	slog.Info("writing coupons to database", slog.Int("count", len(codes)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(writers)
	for batch := range slices.Chunk(codes, batchSize) {
		coupons := make([]coupon.Coupon, len(batch))
		for i, code := range batch {
			c := rule
			c.ID = uuid.NewString()
			c.Code = code
			coupons[i] = c
		}
		g.Go(func() error {
			written, err := repo.Upsert(ctx, coupons)
			if err != nil {
				return errors.Wrapf(err, "upsert batch starting at %s", coupons[0].Code)
			}
			slog.Info("write progress", slog.Int64("written", written), slog.String("first", coupons[0].Code))
			return nil
		})
	}
	return g.Wait()
}
