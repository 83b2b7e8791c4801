package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"backend/models"
)

type YelpService struct {
	apiKey  string
	baseURL string
	client  *http.Client

	latitude  string
	longitude string
}

// NewYelpService initializes the YelpService with credentials and HTTP client
func NewYelpService() *YelpService {
	base := os.Getenv("YELP_API_URL")
	if base == "" {
		base = "https://api.yelp.com"
	}
	lat := os.Getenv("YELP_LATITUDE")
	lng := os.Getenv("YELP_LONGITUDE")
	if lat == "" || lng == "" {
		lat, lng = "1.3521", "103.8198"
	}
	return &YelpService{
		apiKey:    os.Getenv("YELP_API_KEY"),
		baseURL:   base,
		client:    &http.Client{Timeout: 10 * time.Second},
		latitude:  lat,
		longitude: lng,
	}
}

// SearchRestaurants calls the Yelp Fusion business search endpoint
type businessSearchResponse struct {
	Businesses []struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
		Location struct {
			DisplayAddress []string `json:"display_address"`
		} `json:"location"`
		DisplayPhone string  `json:"display_phone"`
		Rating       float64 `json:"rating"`
		Price        string  `json:"price"`
	} `json:"businesses"`
}

func (s *YelpService) SearchRestaurants(term string) ([]models.Restaurant, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("latitude", s.latitude)
	q.Set("longitude", s.longitude)
	q.Set("radius", "5000")
	q.Set("categories", "restaurants")
	q.Set("limit", "5")
	q.Set("sort_by", "rating")

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/v3/businesses/search?%s", s.baseURL, q.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Yelp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Yelp search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Yelp response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp API error %d: %s", resp.StatusCode, string(body))
	}

	var sr businessSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse Yelp JSON: %w", err)
	}

	results := make([]models.Restaurant, 0, len(sr.Businesses))
	for _, b := range sr.Businesses {
		// a listing without a name or photo is useless in the app
		if b.Name == "" || b.ImageURL == "" {
			continue
		}
		phone := b.DisplayPhone
		if phone == "" {
			phone = "Not Available"
		}
		price := b.Price
		if price == "" {
			price = "Not Available"
		}
		results = append(results, models.Restaurant{
			Name:     b.Name,
			ImageURL: b.ImageURL,
			Address:  strings.Join(b.Location.DisplayAddress, ", "),
			Phone:    phone,
			Rating:   b.Rating,
			Price:    price,
		})
	}
	return results, nil
}
