// Package usecase はlikesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	authentity "recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/likes/domain/entity"
	recipesentity "recipe_backend/internal/feature/recipes/domain/entity"
)

// ErrRecipeRecordNotFound はローカルのレシピレコードが存在しない場合に返されます。
var ErrRecipeRecordNotFound = errors.New("recipe record not found")

// UserRepository はユーザーエンティティの読み取りとliked集合の更新を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id bson.ObjectID) (*authentity.User, error)

	// UpdateLikedRecipes はユーザーのlikedRecipes集合全体を置き換えます。
	UpdateLikedRecipes(ctx context.Context, id bson.ObjectID, likedRecipes []bson.ObjectID) error
}

// RecipeRepository はローカルレシピレコードの永続化層を抽象化します。
type RecipeRepository interface {
	// FindBySpoonacularID は外部IDでローカルレコードを取得します。
	// レコードが存在しない場合、ErrRecipeRecordNotFoundを返します。
	FindBySpoonacularID(ctx context.Context, spoonacularID int64) (*entity.Recipe, error)

	// Create は新しいローカルレコードを永続化し、採番されたIDをエンティティに反映します。
	Create(ctx context.Context, recipe *entity.Recipe) error

	// UpdateLikedBy はレシピのlikedBy集合全体を置き換えます。
	UpdateLikedBy(ctx context.Context, id bson.ObjectID, likedBy []bson.ObjectID) error

	// FindByIDs は指定されたIDのレコードを入力順を保って取得します。
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]entity.Recipe, error)
}

// RecipeGateway は外部レシピAPIへのアクセスを抽象化します。
type RecipeGateway interface {
	GetDetails(ctx context.Context, externalID int64) (*recipesentity.RecipeDetail, error)
}

// likeUsecase はlikeトグルとliked一覧取得のビジネスロジックを実装します。
//
// likeトグルはこのシステムで唯一、2つの関連ドキュメントの整合性を要求する操作です:
// 任意のユーザーuとレシピrについて、
// 「rがu.likedRecipesに含まれる ⇔ uがr.likedByに含まれる」
// を維持する責務をこのユースケースだけが負います。
type likeUsecase struct {
	users   UserRepository
	recipes RecipeRepository
	gateway RecipeGateway
}

// NewLikeUsecase はlikeUsecaseの新しいインスタンスを生成します。
func NewLikeUsecase(users UserRepository, recipes RecipeRepository, gateway RecipeGateway) *likeUsecase {
	return &likeUsecase{
		users:   users,
		recipes: recipes,
		gateway: gateway,
	}
}

// Toggle は指定されたユーザーと外部レシピIDのlike状態を反転させます。
// 戻り値はトグル後の状態で、trueならlike、falseならunlikeです。
//
// 外部APIから詳細が取得できないレシピはlikeできません（IDを既に知っていても失敗させます）。
// ユーザー→レシピの順に永続化し、部分失敗時のロールバックは行いません。
func (lu *likeUsecase) Toggle(ctx context.Context, userID bson.ObjectID, spoonacularID int64) (bool, error) {
	// 1. 外部APIからレシピ詳細を取得（新規ローカルレコードの作成に必要）
	detail, err := lu.gateway.GetDetails(ctx, spoonacularID)
	if err != nil {
		return false, fmt.Errorf("fetch recipe details: %w", err)
	}

	// 2. ローカルレコードを外部IDで検索し、なければ作成
	// title/imageは初回like時の値で固定され、以降更新されない
	recipe, err := lu.recipes.FindBySpoonacularID(ctx, spoonacularID)
	if errors.Is(err, ErrRecipeRecordNotFound) {
		recipe = &entity.Recipe{
			SpoonacularID: spoonacularID,
			Title:         detail.Title,
			Image:         detail.Image,
			LikedBy:       []bson.ObjectID{},
		}
		if err := lu.recipes.Create(ctx, recipe); err != nil {
			return false, fmt.Errorf("create recipe record: %w", err)
		}
	} else if err != nil {
		return false, fmt.Errorf("find recipe record: %w", err)
	}

	// 3. ユーザーをロード
	user, err := lu.users.FindByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("find user: %w", err)
	}

	// 4. 現在のlike状態を判定
	isLiked := user.HasLiked(recipe.ID)

	// 5. 両方の鏡像集合をトグル
	if isLiked {
		user.LikedRecipes = removeID(user.LikedRecipes, recipe.ID)
		recipe.LikedBy = removeID(recipe.LikedBy, userID)
	} else {
		user.LikedRecipes = append(user.LikedRecipes, recipe.ID)
		recipe.LikedBy = append(recipe.LikedBy, userID)
	}

	// 6. ユーザー、レシピの順に永続化（部分失敗時の補償処理なし）
	if err := lu.users.UpdateLikedRecipes(ctx, userID, user.LikedRecipes); err != nil {
		return false, fmt.Errorf("persist user: %w", err)
	}
	if err := lu.recipes.UpdateLikedBy(ctx, recipe.ID, recipe.LikedBy); err != nil {
		return false, fmt.Errorf("persist recipe: %w", err)
	}

	return !isLiked, nil
}

// LikedRecipes は指定されたユーザーのliked集合にある全レシピの詳細を返します。
// 各レシピの詳細取得は独立した外部APIリクエストであり、並行に発行しますが、
// 結果の順序はliked集合の順序を維持します。1件でも失敗すると全体が失敗します。
func (lu *likeUsecase) LikedRecipes(ctx context.Context, userID bson.ObjectID) ([]recipesentity.RecipeDetail, error) {
	user, err := lu.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	records, err := lu.recipes.FindByIDs(ctx, user.LikedRecipes)
	if err != nil {
		return nil, fmt.Errorf("find recipe records: %w", err)
	}

	// 各レシピ詳細を並行取得（fan-out）し、インデックスで順序を固定する
	details := make([]recipesentity.RecipeDetail, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		g.Go(func() error {
			d, err := lu.gateway.GetDetails(gctx, rec.SpoonacularID)
			if err != nil {
				return fmt.Errorf("fetch details for recipe %d: %w", rec.SpoonacularID, err)
			}
			details[i] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// removeID は集合から指定されたIDを取り除いた新しいスライスを返します。
func removeID(ids []bson.ObjectID, target bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
