package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/healthforge/healthforge/internal/models"
)

func testClient(server *httptest.Server) *AlgoliaClient {
	return &AlgoliaClient{
		appID:   "TESTAPP",
		apiKey:  "test-key",
		index:   "healthforge_items",
		baseURL: server.URL,
		client:  server.Client(),
	}
}

func TestFacetFilters_CategoryOnly(t *testing.T) {
	filters := facetFilters(Query{Category: models.CategoryGear})

	want := [][]string{{"category:gear"}}
	if !reflect.DeepEqual(filters, want) {
		t.Errorf("expected %v, got %v", want, filters)
	}
}

func TestFacetFilters_DifficultyGroupIsDisjunctive(t *testing.T) {
	filters := facetFilters(Query{
		Category:     models.CategoryExercise,
		Difficulties: []string{"advanced", "beginner"},
		IndoorOnly:   true,
	})

	want := [][]string{
		{"category:exercise"},
		{"difficulty:advanced", "difficulty:beginner"},
		{"indoor:true"},
	}
	if !reflect.DeepEqual(filters, want) {
		t.Errorf("expected %v, got %v", want, filters)
	}
}

func TestAlgoliaSearch_Success(t *testing.T) {
	var gotPath string
	var gotRequest algoliaRequest
	var gotAppID, gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAppID = r.Header.Get("X-Algolia-Application-Id")
		gotKey = r.Header.Get("X-Algolia-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hits":[
			{"objectID":"ex1","name":"Morning HIIT","category":"exercise","calories_per_30min":300,"equipment":["jump rope"],"price_range_usd":0},
			{"objectID":"sup1","name":"Whey Protein","category":"supplement","dosage":"25g daily","allergens":["dairy"],"price_range_usd":29.99}
		],"nbHits":2}`))
	}))
	defer server.Close()

	client := testClient(server)
	hits, err := client.Search(context.Background(), Query{
		Text:         "muscle building",
		Category:     models.CategoryExercise,
		Difficulties: []string{"intermediate", "beginner"},
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/1/indexes/healthforge_items/query" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotAppID != "TESTAPP" || gotKey != "test-key" {
		t.Errorf("expected auth headers, got app=%q key=%q", gotAppID, gotKey)
	}
	if gotRequest.Query != "muscle building" || gotRequest.HitsPerPage != 5 {
		t.Errorf("unexpected request %+v", gotRequest)
	}

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Exercise == nil || hits[0].Exercise.CaloriesPer30Min != 300 {
		t.Errorf("expected exercise detail decoded, got %+v", hits[0])
	}
	if hits[1].Supplement == nil || hits[1].Supplement.Dosage != "25g daily" {
		t.Errorf("expected supplement detail decoded, got %+v", hits[1])
	}
}

func TestAlgoliaSearch_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer server.Close()

	_, err := testClient(server).Search(context.Background(), Query{Category: models.CategoryGear})

	if !errors.Is(err, ErrSearchUnavailable) {
		t.Fatalf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestAlgoliaSearch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := testClient(server).Search(context.Background(), Query{Category: models.CategoryGear})

	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestAlgoliaSearch_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(server)
	client.client = &http.Client{Timeout: time.Second}

	_, err := client.Search(context.Background(), Query{Category: models.CategoryGear})

	if !errors.Is(err, ErrSearchUnavailable) {
		t.Fatalf("expected ErrSearchUnavailable, got %v", err)
	}
}
