package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/pricing"
)

func writeGz(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func testOptions(minFiles int) options {
	return options{minFiles: minFiles, capacity: 1000, minLen: 4, maxLen: 12}
}

func TestCollectCodes(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeGz(t, dir, "a.gz", "summer10", "ONLYA001", "bad code", "abc", "SHARED99"),
		writeGz(t, dir, "b.gz", "SUMMER10", "ONLYB001", "shared99"),
		writeGz(t, dir, "c.gz", "SHARED99", "TOOLONGCODE12345"),
	}

	t.Run("AnyFile", func(t *testing.T) {
		opts := testOptions(1)
		codes, err := collectCodes(t.Context(), opts, files, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"ONLYA001", "ONLYB001", "SHARED99", "SUMMER10"}, codes)
	})
	t.Run("TwoFiles", func(t *testing.T) {
		opts := testOptions(2)
		filters, err := buildBloomFilters(t.Context(), opts, files)
		require.NoError(t, err)

		codes, err := collectCodes(t.Context(), opts, files, filters)
		require.NoError(t, err)
		assert.Equal(t, []string{"SHARED99", "SUMMER10"}, codes)
	})
	t.Run("AllFiles", func(t *testing.T) {
		opts := testOptions(3)
		filters, err := buildBloomFilters(t.Context(), opts, files)
		require.NoError(t, err)

		codes, err := collectCodes(t.Context(), opts, files, filters)
		require.NoError(t, err)
		assert.Equal(t, []string{"SHARED99"}, codes)
	})
}

func TestNormalize(t *testing.T) {
	opts := testOptions(1)
	tests := []struct {
		line string
		want string
	}{
		{line: "  diwali-24 ", want: "DIWALI-24"},
		{line: "abc", want: ""},
		{line: "with space", want: ""},
		{line: "ÜBERCODE", want: ""},
		{line: "THIRTEENCHARS", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.line, opts), tt.line)
	}
}

func TestParseRule(t *testing.T) {
	c, err := parseRule("fixed", "150", "2030-01-31", 0)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountFixed, c.Type)
	assert.True(t, c.Value.Equal(decimal.NewFromInt(150)))
	assert.Nil(t, c.UsageLimit)
	assert.Equal(t, "2030-01-31T23:59:59Z", c.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))
	assert.True(t, c.Active)

	c, err = parseRule("PERCENT", "10", "2030-01-31", 1)
	require.NoError(t, err)
	require.NotNil(t, c.UsageLimit)
	assert.Equal(t, 1, *c.UsageLimit)

	for _, args := range [][3]string{
		{"BOGO", "10", "2030-01-31"},
		{"PERCENT", "0", "2030-01-31"},
		{"PERCENT", "120", "2030-01-31"},
		{"FIXED", "10", "31/01/2030"},
	} {
		_, err := parseRule(args[0], args[1], args[2], 0)
		assert.Error(t, err, args)
	}
}
