package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/healthforge/healthforge/internal/config"
	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/models"
)

// AlgoliaClient queries a hosted Algolia index over its REST query API.
type AlgoliaClient struct {
	appID   string
	apiKey  string
	index   string
	baseURL string
	client  *http.Client
}

func NewAlgoliaClient(cfg config.SearchConfig) *AlgoliaClient {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AlgoliaClient{
		appID:   cfg.AlgoliaAppID,
		apiKey:  cfg.AlgoliaKey,
		index:   cfg.AlgoliaIndex,
		baseURL: fmt.Sprintf("https://%s-dsn.algolia.net", cfg.AlgoliaAppID),
		client:  &http.Client{Timeout: timeout},
	}
}

type algoliaRequest struct {
	Query        string     `json:"query"`
	HitsPerPage  int        `json:"hitsPerPage"`
	FacetFilters [][]string `json:"facetFilters,omitempty"`
}

type algoliaResponse struct {
	Hits    []models.Item `json:"hits"`
	NbHits  int           `json:"nbHits"`
	Message string        `json:"message,omitempty"`
}

// facetFilters renders the query descriptor as Algolia facet filters:
// outer groups are ANDed, values inside a group are ORed.
func facetFilters(q Query) [][]string {
	filters := [][]string{{"category:" + string(q.Category)}}

	if len(q.Difficulties) > 0 {
		group := make([]string, 0, len(q.Difficulties))
		for _, d := range q.Difficulties {
			group = append(group, "difficulty:"+d)
		}
		filters = append(filters, group)
	}

	if q.IndoorOnly {
		filters = append(filters, []string{"indoor:true"})
	}

	return filters
}

func (c *AlgoliaClient) Search(ctx context.Context, q Query) ([]models.Item, error) {
	body, err := json.Marshal(algoliaRequest{
		Query:        q.Text,
		HitsPerPage:  q.Limit,
		FacetFilters: facetFilters(q),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling query", ErrBadResponse)
	}

	url := fmt.Sprintf("%s/1/indexes/%s/query", c.baseURL, c.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", c.appID)
	req.Header.Set("X-Algolia-API-Key", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer func() {
		// Drain and close the body to ensure connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		logging.Error("Algolia non-200 response", map[string]interface{}{
			"status":   resp.StatusCode,
			"category": string(q.Category),
			"body":     string(preview),
		})
		return nil, fmt.Errorf("%w: status %d", ErrSearchUnavailable, resp.StatusCode)
	}

	var parsed algoliaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response", ErrBadResponse)
	}

	logging.Debug("Algolia query completed", map[string]interface{}{
		"category":    string(q.Category),
		"hits":        len(parsed.Hits),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return parsed.Hits, nil
}
