package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCountersAndExposition(t *testing.T) {
	m := New()
	m.ObserveRequest("/products/{id}", http.MethodGet, 200, 15*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, 404, time.Millisecond)
	m.CountLead(LeadAccepted)
	m.CountLead(LeadIncomplete)
	m.CountLead(LeadIncomplete)
	m.CountLookup("not_found")

	require.Equal(t, 2.0, testutil.ToFloat64(m.leads.WithLabelValues(LeadIncomplete)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	require.Contains(t, string(body), `almil_web_contact_submissions_total{outcome="accepted"} 1`)
	require.Contains(t, string(body), `almil_web_product_lookups_total{result="not_found"} 1`)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/", "GET", 200, 0)
	m.CountLead(LeadFailed)
	m.CountLookup("found")
}
