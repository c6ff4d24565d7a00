package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	infraRepo "github.com/izaplantas/floricultura-api/internal/infrastructure/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
)

func newIdempotencyRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	cfg := IdempotencyConfig{Repo: infraRepo.NewIdempotencyRepository(store)}

	calls := 0
	router := gin.New()
	router.POST("/checkout", IdempotencyRequired(cfg), func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true, "calls": calls})
	})
	return router, &calls
}

func TestIdempotencyRequiredRejectsMissingKey(t *testing.T) {
	router, calls := newIdempotencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, *calls)
}

func TestIdempotencyRequiredReplaysStoredResponse(t *testing.T) {
	router, calls := newIdempotencyRouter(t)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(first, req)

	require.Equal(t, 201, first.Code)
	require.Equal(t, 1, *calls)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(second, req)

	// handler did not run again; the stored response came back
	assert.Equal(t, 201, second.Code)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyRequiredDistinctKeysRunSeparately(t *testing.T) {
	router, calls := newIdempotencyRouter(t)

	for _, key := range []string{"k1", "k2"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		router.ServeHTTP(w, req)
		require.Equal(t, 201, w.Code)
	}

	assert.Equal(t, 2, *calls)
}

func TestIdempotencyRequiredDoesNotStoreFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	cfg := IdempotencyConfig{Repo: infraRepo.NewIdempotencyRepository(store)}

	fail := true
	calls := 0
	router := gin.New()
	router.POST("/checkout", IdempotencyRequired(cfg), func(c *gin.Context) {
		calls++
		if fail {
			c.JSON(400, gin.H{"success": false})
			return
		}
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "retry-me")
	router.ServeHTTP(w, req)
	require.Equal(t, 400, w.Code)

	// the client may retry with the same key after a failure
	fail = false
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "retry-me")
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, 2, calls)
}

func newOptionalIdempotencyRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	cfg := IdempotencyConfig{Repo: infraRepo.NewIdempotencyRepository(store)}

	calls := 0
	router := gin.New()
	router.POST("/finance", Idempotency(cfg), func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true, "calls": calls})
	})
	return router, &calls
}

func TestIdempotencyPassesThroughWithoutKey(t *testing.T) {
	router, calls := newOptionalIdempotencyRouter(t)

	for i := 1; i <= 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/finance", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, 201, w.Code)
	}

	// without a key every request reaches the handler
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyReplaysWhenKeyPresent(t *testing.T) {
	router, calls := newOptionalIdempotencyRouter(t)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/finance", nil)
	req.Header.Set(IdempotencyKeyHeader, "entry-42")
	router.ServeHTTP(first, req)
	require.Equal(t, 201, first.Code)
	require.Equal(t, 1, *calls)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/finance", nil)
	req.Header.Set(IdempotencyKeyHeader, "entry-42")
	router.ServeHTTP(second, req)

	assert.Equal(t, 201, second.Code)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
