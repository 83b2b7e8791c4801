package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/require"
)

func newTestGenAIService(srv *httptest.Server) *GenAIService {
	return &GenAIService{
		client:  &http.Client{Timeout: 5 * time.Second},
		token:   "test-token",
		model:   "google/flan-t5-small",
		baseURL: srv.URL,
	}
}

func TestEstimateCaloriesParsesNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"generated_text": "245 kcal"}]`))
	}))
	defer srv.Close()

	got, err := newTestGenAIService(srv).EstimateCalories("fried rice")
	require.NoError(t, err)
	require.Equal(t, 245, got)
}

func TestEstimateCaloriesNoDigitsDefaultsToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text": "it depends on the serving"}]`))
	}))
	defer srv.Close()

	got, err := newTestGenAIService(srv).EstimateCalories("mystery dish")
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "model overloaded"}`))
	}))
	defer srv.Close()

	_, err := newTestGenAIService(srv).EstimateCalories("toast")
	require.Error(t, err)
	require.Contains(t, err.Error(), "model overloaded")
}

func TestGenerateMealPlanSplitsLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text": "- Oatmeal with berries\n\n- Grilled chicken salad\n- Baked salmon with rice\n* Greek yogurt"}]`))
	}))
	defer srv.Close()

	u := &models.User{WeightKg: 70, HeightCm: 175, ActivityLevel: "Moderate", CalorieGoal: 2000}
	lines, err := newTestGenAIService(srv).GenerateMealPlan(u)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Oatmeal with berries",
		"Grilled chicken salad",
		"Baked salmon with rice",
		"Greek yogurt",
	}, lines)
}

func TestSplitPlanLines(t *testing.T) {
	require.Empty(t, SplitPlanLines("  \n \n"))
	require.Equal(t, []string{"one", "two"}, SplitPlanLines("• one\n\t- two\n"))
}

func TestEstimateCaloriesMissingToken(t *testing.T) {
	g := &GenAIService{client: &http.Client{}, model: "m", baseURL: "http://unused"}
	_, err := g.EstimateCalories("rice")
	require.Error(t, err)
}
