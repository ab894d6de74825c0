package driver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blurbgen/internal/apihandlers"
	"blurbgen/internal/app"
	"blurbgen/internal/models"
	"blurbgen/internal/services"
)

func TestRun_AgainstMockServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(apihandlers.NewRouter(app.New(nil, services.NewMockGenerator(), false)))
	defer srv.Close()

	var out bytes.Buffer
	opts := Options{BaseURL: srv.URL, Timeout: 5 * time.Second}
	outcomes, err := Run(context.Background(), &out, opts, services.ListSamples())
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	for _, o := range outcomes {
		assert.True(t, o.OK(), o.Err)
		assert.Contains(t, o.Description, o.Sample.ProductName)
		assert.Contains(t, o.Description, o.Sample.Category)
	}
	assert.Contains(t, out.String(), "[5/5] Testing: ZenPad (meditation app)")
	assert.Contains(t, out.String(), "Test completed!")
}

func TestRun_ReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"model exploded"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	samples := []models.Sample{{ProductName: "EcoBottle", Category: "bottle"}}
	outcomes, err := Run(context.Background(), &out, Options{BaseURL: srv.URL, Timeout: time.Second}, samples)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	assert.False(t, outcomes[0].OK())
	assert.Equal(t, http.StatusInternalServerError, outcomes[0].StatusCode)
	assert.Equal(t, "model exploded", outcomes[0].Err)
	assert.Contains(t, out.String(), "Error: 500")
}

func TestRun_StopsWhenServerIsDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	outcomes, err := Run(context.Background(), &out, Options{BaseURL: url, Timeout: time.Second}, services.ListSamples())
	require.Error(t, err)
	assert.Empty(t, outcomes)
	assert.Contains(t, out.String(), "Connection Error")
	assert.NotContains(t, out.String(), "[2/5]")
}
