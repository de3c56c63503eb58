//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedAnalyticsData creates a small portfolio of applications covering
// several statuses and sources.
func seedAnalyticsData(t *testing.T, ts *testServer, token string) {
	t.Helper()

	createApplication(t, ts, token, map[string]any{
		"company": "Alpha", "position": "Engineer",
		"status": "Applied", "applicationSource": "LinkedIn",
	})
	createApplication(t, ts, token, map[string]any{
		"company": "Beta", "position": "Engineer",
		"status": "Applied", "applicationSource": "LinkedIn",
	})
	createApplication(t, ts, token, map[string]any{
		"company": "Gamma", "position": "Engineer",
		"status": "Interview", "applicationSource": "Referral",
	})
	createApplication(t, ts, token, map[string]any{
		"company": "Delta", "position": "Engineer",
		"status": "Offer", "applicationSource": "LinkedIn",
	})
}

// TestE2E_Analytics_Report verifies the aggregated report over a freshly
// seeded portfolio.
func TestE2E_Analytics_Report(t *testing.T) {
	ts := setupTestServer(t)
	acc := registerTestUser(t, ts)
	seedAnalyticsData(t, ts, acc.AccessToken)

	status, body := ts.doJSON(t, http.MethodGet, "/api/analytics", nil, acc.AccessToken)
	require.Equal(t, http.StatusOK, status, "analytics failed: %v", body)

	// Summary.
	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok, "expected summary object")
	assert.EqualValues(t, 4, summary["totalApplications"])
	assert.EqualValues(t, 4, summary["activeApplications"], "no terminal statuses seeded")

	for _, key := range []string{"interviewRate", "offerRate", "acceptanceRate"} {
		rate, ok := summary[key].(float64)
		require.True(t, ok, "expected numeric %s", key)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
	}

	// Status breakdown omits statuses with zero applications.
	breakdown, ok := body["statusBreakdown"].([]any)
	require.True(t, ok, "expected statusBreakdown array")
	require.Len(t, breakdown, 3)

	counts := map[string]float64{}
	for _, entry := range breakdown {
		e := entry.(map[string]any)
		counts[e["status"].(string)] = e["count"].(float64)
	}
	assert.EqualValues(t, 2, counts["Applied"])
	assert.EqualValues(t, 1, counts["Interview"])
	assert.EqualValues(t, 1, counts["Offer"])

	// Monthly: everything was created just now, so the current month
	// carries all four and is the peak.
	monthly, ok := body["monthly"].(map[string]any)
	require.True(t, ok, "expected monthly object")

	currentLabel := time.Now().UTC().Format("Jan 2006")
	assert.Equal(t, currentLabel, monthly["peakMonth"])

	months := monthly["months"].([]any)
	require.NotEmpty(t, months)
	last := months[len(months)-1].(map[string]any)
	assert.Equal(t, currentLabel, last["label"])
	assert.EqualValues(t, 4, last["count"])

	// Sources.
	sources, ok := body["sources"].([]any)
	require.True(t, ok, "expected sources array")

	totals := map[string]float64{}
	for _, entry := range sources {
		e := entry.(map[string]any)
		totals[e["source"].(string)] = e["total"].(float64)
	}
	assert.EqualValues(t, 3, totals["LinkedIn"])
	assert.EqualValues(t, 1, totals["Referral"])
}

// TestE2E_Analytics_EmptyPortfolio verifies the report for a user with
// no applications returns zeros and empty arrays, not an error.
func TestE2E_Analytics_EmptyPortfolio(t *testing.T) {
	ts := setupTestServer(t)
	acc := registerTestUser(t, ts)

	status, body := ts.doJSON(t, http.MethodGet, "/api/analytics", nil, acc.AccessToken)
	require.Equal(t, http.StatusOK, status)

	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 0, summary["totalApplications"])

	breakdown, ok := body["statusBreakdown"].([]any)
	require.True(t, ok, "statusBreakdown should be an empty array, not null")
	assert.Empty(t, breakdown)

	sources, ok := body["sources"].([]any)
	require.True(t, ok, "sources should be an empty array, not null")
	assert.Empty(t, sources)
}

// TestE2E_Analytics_RangeFilter verifies the range query parameter is
// accepted and an unknown value is rejected.
func TestE2E_Analytics_RangeFilter(t *testing.T) {
	ts := setupTestServer(t)
	acc := registerTestUser(t, ts)
	seedAnalyticsData(t, ts, acc.AccessToken)

	// All seeded records fall inside any window that ends now.
	status, body := ts.doJSON(t, http.MethodGet, "/api/analytics?range=3m", nil, acc.AccessToken)
	require.Equal(t, http.StatusOK, status)
	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 4, summary["totalApplications"])

	status, _ = ts.doJSON(t, http.MethodGet, "/api/analytics?range=5y", nil, acc.AccessToken)
	assert.Equal(t, http.StatusBadRequest, status)
}
