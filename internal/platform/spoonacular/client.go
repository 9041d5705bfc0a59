package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
	"recipe_backend/internal/platform/spoonacular/dto"
)

const (
	// searchResultLimit は1回の検索で取得するレシピ件数です。
	searchResultLimit = 12
)

// Client はSpoonacular外部APIからレシピデータを取得するRecipeGateway実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがRecipeGatewayを実装していることをコンパイル時に検証します。
var _ usecase.RecipeGateway = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Search はレシピ要約の一覧を取得します。
// クエリが空の場合は/randomからランダムな12件を、
// 指定された場合は/searchから最大12件を取得します。
func (s *Client) Search(ctx context.Context, query string) ([]entity.RecipeSummary, error) {
	q := url.Values{}
	q.Set("number", strconv.Itoa(searchResultLimit))
	q.Set("apiKey", s.cfg.APIKey)

	if query == "" {
		// クエリなし: ランダムレシピを取得
		u := fmt.Sprintf("%s/random?%s", s.cfg.BaseURL, q.Encode())
		var body dto.RandomResponse
		if err := s.getJSON(ctx, u, &body); err != nil {
			return nil, err
		}
		return toSummaries(body.Recipes), nil
	}

	// クエリあり: テキスト検索（拡張レシピ情報付き）
	q.Set("query", query)
	q.Set("addRecipeInformation", "true")
	u := fmt.Sprintf("%s/search?%s", s.cfg.BaseURL, q.Encode())
	var body dto.SearchResponse
	if err := s.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return toSummaries(body.Results), nil
}

// GetDetails はSpoonacular APIからレシピ詳細を取得し、
// entity.RecipeDetailとして返します。
// 該当IDが存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (s *Client) GetDetails(ctx context.Context, externalID int64) (*entity.RecipeDetail, error) {
	q := url.Values{}
	q.Set("includeNutrition", "true")
	q.Set("apiKey", s.cfg.APIKey)

	u := fmt.Sprintf("%s/%d/information?%s", s.cfg.BaseURL, externalID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spoonacular request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 4xxは「該当レシピなし」として扱う
	if res.StatusCode >= 400 && res.StatusCode < 500 {
		return nil, usecase.ErrRecipeNotFound
	}
	if res.StatusCode >= 500 {
		return nil, fmt.Errorf("spoonacular http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	// 長さゼロのボディ（デコーダーがEOFを返す）も「該当レシピなし」として扱う
	var body dto.RecipeInformation
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("spoonacular decode: %w", err)
	}
	// 空オブジェクト（IDなし）も「該当レシピなし」として扱う
	if body.ID == 0 && body.Title == "" {
		return nil, usecase.ErrRecipeNotFound
	}

	return toDetail(body), nil
}

// getJSON はGETリクエストを実行し、レスポンスJSONをデコードします。
func (s *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("spoonacular request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("spoonacular http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("spoonacular decode: %w", err)
	}
	return nil
}

// toSummaries はDTOのスライスをドメインエンティティに変換します。
func toSummaries(infos []dto.RecipeInformation) []entity.RecipeSummary {
	out := make([]entity.RecipeSummary, 0, len(infos))
	for _, v := range infos {
		out = append(out, entity.RecipeSummary{
			ID:             v.ID,
			Title:          v.Title,
			Image:          v.Image,
			ReadyInMinutes: v.ReadyInMinutes,
			Servings:       v.Servings,
			Summary:        v.Summary,
			SourceURL:      v.SourceURL,
		})
	}
	return out
}

// toDetail はDTOをドメインエンティティに変換します。
func toDetail(v dto.RecipeInformation) *entity.RecipeDetail {
	ingredients := make([]entity.Ingredient, 0, len(v.ExtendedIngredients))
	for _, ing := range v.ExtendedIngredients {
		ingredients = append(ingredients, entity.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Original: ing.Original,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
		})
	}

	nutrients := make([]entity.Nutrient, 0, len(v.Nutrition.Nutrients))
	for _, n := range v.Nutrition.Nutrients {
		nutrients = append(nutrients, entity.Nutrient{
			Name:   n.Name,
			Amount: n.Amount,
			Unit:   n.Unit,
		})
	}

	return &entity.RecipeDetail{
		ID:             v.ID,
		Title:          v.Title,
		Image:          v.Image,
		ReadyInMinutes: v.ReadyInMinutes,
		Servings:       v.Servings,
		Nutrition:      entity.Nutrition{Nutrients: nutrients},
		Ingredients:    ingredients,
		Instructions:   v.Instructions,
		Summary:        v.Summary,
		SourceURL:      v.SourceURL,
	}
}
