package tracking_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, path string) (int, models.TrackingLink) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/tracking/:number", GetTracking)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var env struct {
		Data models.TrackingLink `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env.Data
}

func TestGetTracking(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantCarrier string
		wantURL     string
	}{
		{"ups", "/tracking/1Z999AA10123456784", "UPS", "ups.com/track?tracknum=1Z999AA10123456784"},
		{"fedex", "/tracking/123456789012", "FedEx", "fedex.com/fedextrack/?trknbr=123456789012"},
		{"usps", "/tracking/9400111899223197428490", "USPS", "tLabels=9400111899223197428490"},
		{"explicit carrier", "/tracking/1Z999AA10123456784?carrier=usps", "USPS", "tLabels=1Z999AA10123456784"},
		{"fallback", "/tracking/ABC123", "UPS", "tracknum=ABC123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, link := lookup(t, tt.path)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.wantCarrier, link.Carrier)
			assert.Contains(t, link.URL, tt.wantURL)
		})
	}
}

func TestGetTrackingRejectsUnknownCarrier(t *testing.T) {
	code, _ := lookup(t, "/tracking/1Z999AA10123456784?carrier=pigeon")
	assert.Equal(t, http.StatusBadRequest, code)
}
