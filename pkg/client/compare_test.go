package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

var compareFixtures = map[string]map[string]interface{}{
	"1": {"id": 1, "brand": "Tesla", "accel_sec": 4.6, "top_speed_kmh": 233, "range_km": 450, "efficiency_whkm": 161, "fast_charge_kmh": 940},
	"2": {"id": 2, "brand": "Nissan", "accel_sec": 7.9, "top_speed_kmh": 144, "range_km": 220, "efficiency_whkm": 164, "fast_charge_kmh": 230},
	"3": {"id": 3, "brand": "Renault", "accel_sec": 9.9, "top_speed_kmh": 135, "range_km": 250, "efficiency_whkm": 153, "fast_charge_kmh": nil},
}

func compareServer(t *testing.T) *Client {
	return newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/electric-cars/")
		car, ok := compareFixtures[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Electric car not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": car})
	})
}

func TestCompare_BestValues(t *testing.T) {
	c := compareServer(t)

	cmp, err := c.Compare(context.Background(), []uint{3, 1, 2})
	require.NoError(t, err)
	require.Len(t, cmp.Cars, 3)
	assert.Equal(t, "Renault", cmp.Cars[0].Brand)
	assert.Equal(t, "Tesla", cmp.Cars[1].Brand)

	assert.Equal(t, 4.6, cmp.Best[MetricAccel])
	assert.Equal(t, float64(233), cmp.Best[MetricTopSpeed])
	assert.Equal(t, float64(450), cmp.Best[MetricRange])
	assert.Equal(t, float64(153), cmp.Best[MetricEfficiency])
	assert.Equal(t, float64(940), cmp.Best[MetricFastCharge])

	assert.True(t, cmp.IsBest(MetricEfficiency, cmp.Cars[0]))
	assert.False(t, cmp.IsBest(MetricFastCharge, cmp.Cars[0]))
	assert.True(t, cmp.IsBest(MetricRange, cmp.Cars[1]))
}

func TestCompare_AnyFailureFails(t *testing.T) {
	c := compareServer(t)

	_, err := c.Compare(context.Background(), []uint{1, 999})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCompare_NoIDs(t *testing.T) {
	_, err := New("http://localhost").Compare(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoCars)
}

func TestBestValues_MissingFastCharge(t *testing.T) {
	best := bestValues([]Car{{FastChargeKmh: nil}, {FastChargeKmh: intPtr(500)}})
	assert.Equal(t, float64(500), best[MetricFastCharge])

	best = bestValues([]Car{{FastChargeKmh: nil}})
	_, ok := best[MetricFastCharge]
	assert.False(t, ok)
}
