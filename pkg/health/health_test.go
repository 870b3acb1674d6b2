package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	status string
	checks map[string]string
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response {
	t.Helper()
	r := response{checks: map[string]string{}}
	err := jx.DecodeBytes(w.Body.Bytes()).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			v, err := d.Str()
			r.status = v
			return err
		case "checks":
			return d.Obj(func(d *jx.Decoder, name string) error {
				v, err := d.Str()
				r.checks[name] = v
				return err
			})
		default:
			return d.Skip()
		}
	})
	require.NoError(t, err)
	return r
}

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func passing(context.Context) error { return nil }

func get(h http.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestLiveEndpoint(t *testing.T) {
	h := New()
	h.AddLivenessCheck("ok", time.Second, passing)
	h.AddLivenessCheck("db", time.Second, failing("connection refused"))

	w := get(h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, w.Code, "checks start healthy")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	for range failureThreshold {
		h.live[1].run(context.Background())
	}

	w = get(h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	assert.Equal(t, "unhealthy", body.status)
	assert.Equal(t, map[string]string{"db": "connection refused"}, body.checks)
}

func TestMonitor_Thresholds(t *testing.T) {
	fail := true
	p := newMonitor("flaky", time.Second, func(context.Context) error {
		if fail {
			return errors.New("down")
		}
		return nil
	})
	ctx := context.Background()

	p.run(ctx)
	p.run(ctx)
	_, failed := p.failure()
	assert.False(t, failed, "two failures stay below the threshold")

	p.run(ctx)
	msg, failed := p.failure()
	assert.True(t, failed)
	assert.Equal(t, "down", msg)

	fail = false
	p.run(ctx)
	_, failed = p.failure()
	assert.False(t, failed)
}

func TestReadyEndpoint(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", time.Second, passing)

	w := get(h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "service is not ready", decode(t, w).checks["_readiness"])
	assert.False(t, h.IsReady())

	h.SetReady(true)
	w = get(h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w).status)
	assert.True(t, h.IsReady())
}

func TestStart_RunsChecks(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", 100*time.Millisecond, failing("down"))
	h.SetReady(true)

	h.Start(context.Background(), 10*time.Millisecond)
	defer h.Stop()

	require.Eventually(t, func() bool { return !h.IsReady() }, time.Second, 10*time.Millisecond)
	h.Stop()
	h.Stop()
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, PingCheck(pinger{})(ctx))
	assert.ErrorContains(t, PingCheck(pinger{err: errors.New("refused")})(ctx), "refused")

	assert.NoError(t, GoroutineCountCheck(1_000_000)(ctx))
	assert.Error(t, GoroutineCountCheck(0)(ctx))
}
