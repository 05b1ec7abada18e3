package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Place is the result of a reverse lookup; either field may be empty when the
// provider has no data for the coordinates.
type Place struct {
	City    string
	Country string
}

// Resolver turns coordinates into an optional city/country pair. It is an
// injected capability so entry-creation flows can be tested without network.
type Resolver interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}

// NominatimResolver implements Resolver against a Nominatim-compatible endpoint.
type NominatimResolver struct {
	BaseURL string
	Client  *http.Client
}

func NewNominatim(baseURL string) *NominatimResolver {
	return &NominatimResolver{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *NominatimResolver) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	url := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", r.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Place{}, err
	}
	req.Header.Set("User-Agent", "travelog-backend")

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocode lookup failed: status %d", resp.StatusCode)
	}

	var body struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Country string `json:"country"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, err
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}
	return Place{City: city, Country: body.Address.Country}, nil
}
