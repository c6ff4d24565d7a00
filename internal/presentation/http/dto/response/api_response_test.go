package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
)

func TestErrorMapsStorageFailureTo503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, &storage.Failure{Op: "read", Key: "iza_products", Err: errors.New("disk gone")})

	assert.Equal(t, 503, w.Code)
	assert.Contains(t, w.Body.String(), "Storage unavailable")
}

func TestErrorMapsAppErrorCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, apperror.NewNotFoundError("Product"))

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestErrorDefaultsTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, errors.New("boom"))

	assert.Equal(t, 500, w.Code)
}
