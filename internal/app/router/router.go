package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	likeshandler "recipe_backend/internal/feature/likes/transport/handler"
	recipeshandler "recipe_backend/internal/feature/recipes/transport/handler"
	healthhandler "recipe_backend/internal/platform/http/handler"
	jwtmw "recipe_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, recipes *recipeshandler.RecipesHandler,
	likes *likeshandler.LikeHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加（フロントエンドからのブラウザアクセスを許可）
	// ルート登録前に適用しないと効かない点に注意
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", healthhandler.Health)

	api := r.Group("/api")
	{
		// 新規ユーザー登録
		api.POST("/auth/register", authHandler.Register)
		// ログイン（JWT 発行）
		api.POST("/auth/login", authHandler.Login)
		// レシピ検索（名前なしならランダム12件）
		api.GET("/recipes/search", recipes.Search)
		// レシピ詳細
		api.GET("/recipes/:id", recipes.GetDetails)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/like/:spoonacularId", likes.Toggle)
		auth.GET("/liked-recipes", likes.LikedRecipes)
	}

	return r
}
