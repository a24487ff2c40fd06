package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// Config параметры поиска адресов
type Config struct {
	BaseURL      string
	Token        string
	Country      string
	ProximityLon float64
	ProximityLat float64
	MinResults   int
	Limit        int
	Timeout      time.Duration
}

// Client клиент forward geocoding API с подстановкой известных городов
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Search ищет адреса по строке запроса.
// Если API недоступен или вернул меньше MinResults, результаты дополняются
// известными городами, название которых начинается с запроса.
func (c *Client) Search(ctx context.Context, query string) ([]domain.AddressRef, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	results, err := c.forward(ctx, query)
	if err != nil {
		c.log.Warn("Geocoder: remote search failed, using local fallback: query=%q, error=%v", query, err)
		results = nil
	}

	if len(results) < c.cfg.MinResults {
		results = appendFallback(results, query, c.cfg.Limit)
	}

	return results, nil
}

func (c *Client) forward(ctx context.Context, query string) ([]domain.AddressRef, error) {
	if c.cfg.Token == "" {
		return nil, fmt.Errorf("%w: geocoder token is not configured", ErrInternal)
	}

	params := url.Values{}
	params.Set("access_token", c.cfg.Token)
	params.Set("country", c.cfg.Country)
	params.Set("proximity", formatCoord(c.cfg.ProximityLon)+","+formatCoord(c.cfg.ProximityLat))
	params.Set("limit", strconv.Itoa(c.cfg.Limit))
	params.Set("language", "fr")
	params.Set("types", "address,place,postcode")

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	results := make([]domain.AddressRef, 0, len(payload.Features))
	for _, f := range payload.Features {
		if len(f.Center) != 2 {
			continue
		}
		results = append(results, f.toAddress())
	}

	return results, nil
}

func (f feature) toAddress() domain.AddressRef {
	ref := domain.AddressRef{
		ID:        f.ID,
		PlaceName: f.PlaceName,
		Center:    [2]float64{f.Center[0], f.Center[1]},
		Address:   strings.TrimSpace(f.Text + " " + f.Address),
	}

	for _, item := range f.Context {
		switch {
		case strings.HasPrefix(item.ID, "postcode."):
			ref.Postcode = item.Text
		case strings.HasPrefix(item.ID, "place."):
			ref.City = item.Text
		}
	}

	// сам результат может быть городом или индексом
	for _, t := range f.PlaceType {
		switch t {
		case "place":
			ref.City = f.Text
			ref.Address = ""
		case "postcode":
			ref.Postcode = f.Text
			ref.Address = ""
		}
	}

	return ref
}

// appendFallback дополняет результаты известными городами, без дублей
func appendFallback(results []domain.AddressRef, query string, limit int) []domain.AddressRef {
	prefix := fold(query)
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		seen[fold(r.City)] = struct{}{}
	}

	for _, c := range knownCities {
		if limit > 0 && len(results) >= limit {
			break
		}
		name := fold(c.Name)
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		results = append(results, domain.AddressRef{
			ID:        "fallback." + name,
			PlaceName: c.Postcode + " " + c.Name + ", Suisse",
			Center:    [2]float64{c.Lon, c.Lat},
			City:      c.Name,
			Postcode:  c.Postcode,
		})
	}

	return results
}

// fold нижний регистр без диакритики: "Genève" -> "geneve"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
