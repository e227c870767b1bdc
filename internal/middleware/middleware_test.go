package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-todo/pkg/log"
)

func newTestRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})...)
	return r
}

func TestRequestID_Generates(t *testing.T) {
	mw := New(log.NewNop(), 60)
	r := newTestRouter(mw, mw.RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(HeaderRequestID)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a generated uuid, got %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("context request id = %q, header = %q", w.Body.String(), id)
	}
}

func TestRequestID_ReusesValidHeader(t *testing.T) {
	mw := New(log.NewNop(), 60)
	r := newTestRouter(mw, mw.RequestID())
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != incoming {
		t.Errorf("header = %q, want %q", got, incoming)
	}
}

func TestRequestID_ReplacesGarbage(t *testing.T) {
	mw := New(log.NewNop(), 60)
	r := newTestRouter(mw, mw.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got == "<script>" {
		t.Error("invalid incoming request id should be replaced")
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 with a refill of one per second.
	mw := New(log.NewNop(), 60)
	r := newTestRouter(mw, mw.RateLimit())

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		if code := do("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("over the burst: got %d, want 429", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client: got %d, want 200", code)
	}
}

func TestNewRateLimiter_MinimumBurst(t *testing.T) {
	rl := newRateLimiter(5)
	if rl.burst != 1 {
		t.Errorf("burst = %d, want 1", rl.burst)
	}
	if !rl.Allow("client") {
		t.Error("first request should be allowed")
	}
}

func TestRateLimiter_ConcurrentFirstRequestsShareBucket(t *testing.T) {
	// One request per minute gives a burst of 1, so exactly one caller may pass.
	rl := newRateLimiter(1)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.9") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("tracked clients = %d, want 1", rl.limiters.Len())
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
