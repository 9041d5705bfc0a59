// Package dto はSpoonacular APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// RecipeInformation は/recipes/{id}/informationおよび検索結果の1件分のレスポンスです。
type RecipeInformation struct {
	ID                  int64        `json:"id"`
	Title               string       `json:"title"`
	Image               string       `json:"image"`
	ReadyInMinutes      int          `json:"readyInMinutes"`
	Servings            int          `json:"servings"`
	Summary             string       `json:"summary"`
	SourceURL           string       `json:"sourceUrl"`
	Instructions        string       `json:"instructions"`
	Nutrition           Nutrition    `json:"nutrition"`
	ExtendedIngredients []Ingredient `json:"extendedIngredients"`
}

// Nutrition は栄養情報のレスポンスです。
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient は栄養素1件分のレスポンスです。
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Ingredient は材料1件分のレスポンスです。
type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// RandomResponse は/recipes/randomのレスポンスです。
type RandomResponse struct {
	Recipes []RecipeInformation `json:"recipes"`
}

// SearchResponse は/recipes/searchのレスポンスです。
type SearchResponse struct {
	Results []RecipeInformation `json:"results"`
}
