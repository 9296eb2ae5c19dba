package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rentdesk/internal/handler/httperr"
	"rentdesk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	resp := httperr.New(http.StatusConflict, "Insufficient stock").WithDetail(gin.H{"shortfall": 1})
	httperr.AbortWithError(c, errs.New("stock conflict"), resp)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Insufficient stock"},"detail":{"shortfall":1}}`, w.Body.String())

	require.Len(t, c.Errors, 1)
	recorded, ok := c.Errors[0].Meta.(httperr.Response)
	require.True(t, ok, "middleware reads the response back from Meta")
	assert.Equal(t, http.StatusConflict, recorded.Status)
}

func TestAbortWithErrorNilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, nil, httperr.New(http.StatusInternalServerError, "boom"))
	})
}
