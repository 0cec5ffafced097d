package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
	DefaultTimeout = 10 * time.Second
)

// Nominatim reverse-geocodes a fixed pair of coordinates against a
// Nominatim-compatible endpoint. Coordinates come from configuration; when
// they are absent the resolver never leaves the process and answers Unknown.
type Nominatim struct {
	baseURL    string
	client     *http.Client
	lat, lon   float64
	configured bool
	log        zerolog.Logger
}

type NominatimOptions struct {
	BaseURL string
	Timeout time.Duration
	// Lat/Lon are the user's position; HasCoords false disables lookups.
	Lat, Lon  float64
	HasCoords bool
	Logger    zerolog.Logger
}

func NewNominatim(opts NominatimOptions) *Nominatim {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Nominatim{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		lat:        opts.Lat,
		lon:        opts.Lon,
		configured: opts.HasCoords,
		log:        opts.Logger,
	}
}

type reverseResponse struct {
	Address struct {
		State  string `json:"state"`
		County string `json:"county"`
		Region string `json:"region"`
		City   string `json:"city"`
	} `json:"address"`
}

func (n *Nominatim) CurrentRegion(ctx context.Context) string {
	if !n.configured {
		return Unknown
	}

	region, err := n.reverse(ctx)
	if err != nil {
		n.log.Warn().Err(err).Msg("reverse geocode failed, using Unknown")
		return Unknown
	}
	return region
}

func (n *Nominatim) reverse(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", n.lat))
	q.Set("lon", fmt.Sprintf("%f", n.lon))
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	// Prefer region/state level granularity over city.
	for _, candidate := range []string{parsed.Address.State, parsed.Address.County, parsed.Address.Region, parsed.Address.City} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return Unknown, nil
}
