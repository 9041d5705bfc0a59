package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe_backend/internal/feature/recipes/usecase"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com/recipes",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	c := NewClient(cfg, client)

	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, c.cfg.APIKey)
	}
}

func TestClient_Search_NoQuery_UsesRandom(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No query means the random endpoint with a fixed batch size
		if r.URL.Path != "/random" {
			t.Errorf("expected path /random, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("number") != "12" {
			t.Errorf("expected number 12, got %s", r.URL.Query().Get("number"))
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("expected apiKey test-key, got %s", r.URL.Query().Get("apiKey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"recipes": [
				{"id": 1, "title": "Carbonara", "image": "c.jpg", "readyInMinutes": 25, "servings": 4},
				{"id": 2, "title": "Ramen", "image": "r.jpg", "readyInMinutes": 40, "servings": 2}
			]
		}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	summaries, err := c.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != 1 || summaries[0].Title != "Carbonara" {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].ReadyInMinutes != 40 {
		t.Errorf("expected readyInMinutes 40, got %d", summaries[1].ReadyInMinutes)
	}
}

func TestClient_Search_WithQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("expected path /search, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "pasta" {
			t.Errorf("expected query pasta, got %s", r.URL.Query().Get("query"))
		}
		if r.URL.Query().Get("number") != "12" {
			t.Errorf("expected number 12, got %s", r.URL.Query().Get("number"))
		}
		if r.URL.Query().Get("addRecipeInformation") != "true" {
			t.Errorf("expected addRecipeInformation true, got %s", r.URL.Query().Get("addRecipeInformation"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results": [{"id": 3, "title": "Pasta Salad"}]}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	summaries, err := c.Search(context.Background(), "pasta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Title != "Pasta Salad" {
		t.Errorf("expected title Pasta Salad, got %q", summaries[0].Title)
	}
}

func TestClient_Search_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	if _, err := c.Search(context.Background(), ""); err == nil {
		t.Fatal("expected error on upstream 500")
	}
}

func TestClient_GetDetails_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/42/information" {
			t.Errorf("expected path /42/information, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("includeNutrition") != "true" {
			t.Errorf("expected includeNutrition true, got %s", r.URL.Query().Get("includeNutrition"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": 42,
			"title": "Carbonara",
			"image": "c.jpg",
			"readyInMinutes": 25,
			"servings": 4,
			"summary": "A classic.",
			"sourceUrl": "https://example.com/carbonara",
			"instructions": "Boil pasta.",
			"nutrition": {"nutrients": [{"name": "Calories", "amount": 520.5, "unit": "kcal"}]},
			"extendedIngredients": [
				{"id": 1, "name": "spaghetti", "original": "200g spaghetti", "amount": 200, "unit": "g"}
			]
		}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	detail, err := c.GetDetails(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.ID != 42 || detail.Title != "Carbonara" {
		t.Errorf("unexpected detail: %+v", detail)
	}
	if detail.Servings != 4 || detail.ReadyInMinutes != 25 {
		t.Errorf("unexpected servings/readyInMinutes: %+v", detail)
	}
	if len(detail.Ingredients) != 1 || detail.Ingredients[0].Name != "spaghetti" {
		t.Errorf("unexpected ingredients: %+v", detail.Ingredients)
	}
	if len(detail.Nutrition.Nutrients) != 1 || detail.Nutrition.Nutrients[0].Amount != 520.5 {
		t.Errorf("unexpected nutrition: %+v", detail.Nutrition)
	}
	if detail.SourceURL != "https://example.com/carbonara" {
		t.Errorf("unexpected sourceUrl: %q", detail.SourceURL)
	}
}

func TestClient_GetDetails_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	_, err := c.GetDetails(context.Background(), 999)
	if !errors.Is(err, usecase.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got: %v", err)
	}
}

func TestClient_GetDetails_EmptyBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "zero-length body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

			_, err := c.GetDetails(context.Background(), 999)
			if !errors.Is(err, usecase.ErrRecipeNotFound) {
				t.Errorf("expected ErrRecipeNotFound for empty body, got: %v", err)
			}
		})
	}
}

func TestClient_GetDetails_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	_, err := c.GetDetails(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error on upstream 503")
	}
	if errors.Is(err, usecase.ErrRecipeNotFound) {
		t.Error("a 5xx must not be reported as not-found")
	}
}
