package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveAward(t *testing.T) {
	c, err := NewCollector()
	require.NoError(t, err)

	c.ObserveAward("pickup_verification", 19, true)
	c.ObserveAward("pickup_verification", 12, true)
	c.ObserveAward("redemption", -500, false)

	assert.InDelta(t, 2, testutil.ToFloat64(c.awards.WithLabelValues("pickup_verification", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.awards.WithLabelValues("redemption", "false")), 0)
	assert.InDelta(t, 31, testutil.ToFloat64(c.tokensAwarded.WithLabelValues("pickup_verification")), 0)
}

func TestCollector_NilReceiverIsSafe(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveAward("bonus", 1, true)
		c.ObserveMilestone("first_pickup")
		c.ObserveRoute("nearest", 3, 1200)
	})
}

func TestCollector_Handler(t *testing.T) {
	c, err := NewCollector()
	require.NoError(t, err)
	c.ObserveMilestone("first_pickup")
	c.ObserveRoute("weighted", 4, 5300)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `reclaim_milestones_awarded_total{milestone="first_pickup"} 1`)
	assert.Contains(t, body, `reclaim_route_optimizations_total{strategy="weighted"} 1`)
	assert.Contains(t, body, "reclaim_route_stops_count 1")
}
