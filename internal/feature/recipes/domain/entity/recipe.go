// Package entity defines the domain entities for the recipes feature.
package entity

// RecipeSummary は検索結果として返されるレシピの要約を表します。
type RecipeSummary struct {
	// ID is the external API's integer identifier for the recipe.
	ID int64 `json:"id"`

	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	Summary        string `json:"summary"`
	SourceURL      string `json:"sourceUrl"`
}

// Ingredient はレシピの材料1件を表します。
type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// Nutrient は栄養素1件の名称と含有量を表します。
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Nutrition はレシピの栄養情報を表します。
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// RecipeDetail は外部APIから取得したレシピ詳細を表します。
// /api/recipes/:id と /api/liked-recipes のレスポンス形式でもあります。
type RecipeDetail struct {
	// ID is the external API's integer identifier for the recipe.
	ID int64 `json:"id"`

	Title          string       `json:"title"`
	Image          string       `json:"image"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	Servings       int          `json:"servings"`
	Nutrition      Nutrition    `json:"nutrition"`
	Ingredients    []Ingredient `json:"ingredients"`
	Instructions   string       `json:"instructions"`
	Summary        string       `json:"summary"`
	SourceURL      string       `json:"sourceUrl"`
}
