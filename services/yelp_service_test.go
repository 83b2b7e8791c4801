package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const yelpSearchBody = `{
  "businesses": [
    {
      "name": "Green Bowl",
      "image_url": "https://img.example.com/green-bowl.jpg",
      "location": {"display_address": ["12 Orchard Rd", "Singapore 238801"]},
      "display_phone": "+65 6123 4567",
      "rating": 4.5,
      "price": "$$"
    },
    {
      "name": "No Photo Diner",
      "image_url": "",
      "location": {"display_address": ["1 Somewhere St"]},
      "rating": 4.0
    },
    {
      "name": "",
      "image_url": "https://img.example.com/anon.jpg"
    },
    {
      "name": "Bare Minimum Cafe",
      "image_url": "https://img.example.com/bare.jpg",
      "location": {"display_address": []}
    }
  ]
}`

func newTestYelpService(srv *httptest.Server) *YelpService {
	return &YelpService{
		apiKey:    "test-key",
		baseURL:   srv.URL,
		client:    &http.Client{Timeout: 5 * time.Second},
		latitude:  "1.3521",
		longitude: "103.8198",
	}
}

func TestSearchRestaurantsFiltersAndDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/businesses/search", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "Healthy food", r.URL.Query().Get("term"))
		require.NotEmpty(t, r.URL.Query().Get("latitude"))
		require.NotEmpty(t, r.URL.Query().Get("radius"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(yelpSearchBody))
	}))
	defer srv.Close()

	svc := newTestYelpService(srv)
	got, err := svc.SearchRestaurants("Healthy food")
	require.NoError(t, err)

	// entries without a name or image URL are dropped
	require.Len(t, got, 2)

	require.Equal(t, "Green Bowl", got[0].Name)
	require.Equal(t, "12 Orchard Rd, Singapore 238801", got[0].Address)
	require.Equal(t, "+65 6123 4567", got[0].Phone)
	require.Equal(t, 4.5, got[0].Rating)
	require.Equal(t, "$$", got[0].Price)

	// optional fields default
	require.Equal(t, "Bare Minimum Cafe", got[1].Name)
	require.Equal(t, 0.0, got[1].Rating)
	require.Equal(t, "Not Available", got[1].Phone)
	require.Equal(t, "Not Available", got[1].Price)
}

func TestSearchRestaurantsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": "RATE_LIMITED"}}`))
	}))
	defer srv.Close()

	svc := newTestYelpService(srv)
	_, err := svc.SearchRestaurants("Salad bar")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
