package usecase

import (
	"context"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// RecipeGateway は外部レシピAPIへのアクセスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RecipeGateway interface {
	// Search はクエリに一致するレシピ要約を取得します。
	// クエリが空の場合はランダムなレシピを固定件数返します。
	Search(ctx context.Context, query string) ([]entity.RecipeSummary, error)

	// GetDetails は外部IDで指定されたレシピの詳細を取得します。
	// 該当レシピが存在しない場合、ErrRecipeNotFoundを返します。
	GetDetails(ctx context.Context, externalID int64) (*entity.RecipeDetail, error)
}

// recipesUsecase はレシピ検索・詳細取得のユースケースを定義します。
// リトライもキャッシュも行わず、毎回外部APIへの実リクエストとなります
// （キャッシュはデコレーターとしてゲートウェイ側に差し込まれます）。
type recipesUsecase struct {
	gateway RecipeGateway
}

// NewRecipesUsecase はrecipesUsecaseの新しいインスタンスを生成します。
func NewRecipesUsecase(gateway RecipeGateway) *recipesUsecase {
	return &recipesUsecase{gateway: gateway}
}

// Search は指定されたクエリでレシピを検索します。
func (ru *recipesUsecase) Search(ctx context.Context, query string) ([]entity.RecipeSummary, error) {
	return ru.gateway.Search(ctx, query)
}

// GetDetails は指定された外部IDのレシピ詳細を取得します。
func (ru *recipesUsecase) GetDetails(ctx context.Context, externalID int64) (*entity.RecipeDetail, error) {
	return ru.gateway.GetDetails(ctx, externalID)
}
