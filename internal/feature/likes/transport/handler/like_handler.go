// Package handler はlikesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"recipe_backend/internal/api"
	recipesentity "recipe_backend/internal/feature/recipes/domain/entity"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// LikeUsecase はlike操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LikeUsecase interface {
	// Toggle はlike状態を反転させ、トグル後の状態を返します。
	Toggle(ctx context.Context, userID bson.ObjectID, spoonacularID int64) (bool, error)
	// LikedRecipes はユーザーのliked集合にある全レシピの詳細を返します。
	LikedRecipes(ctx context.Context, userID bson.ObjectID) ([]recipesentity.RecipeDetail, error)
}

// LikeHandler はlikeトグルとliked一覧のHTTPリクエストを処理します。
type LikeHandler struct {
	uc LikeUsecase
}

// NewLikeHandler は指定されたusecaseでLikeHandlerの新しいインスタンスを生成します。
func NewLikeHandler(uc LikeUsecase) *LikeHandler {
	return &LikeHandler{uc: uc}
}

// userIDFromContext は認証ミドルウェアが設定したユーザーIDを取り出します。
func userIDFromContext(c *gin.Context) (bson.ObjectID, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return bson.ObjectID{}, false
	}
	hex, ok := v.(string)
	if !ok {
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return id, true
}

// Toggle はlikeトグルエンドポイントを処理します。
//
// エンドポイント例:
// POST /api/like/716429
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	spoonacularID, err := strconv.ParseInt(c.Param("spoonacularId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid recipe id"})
		return
	}

	liked, err := h.uc.Toggle(c.Request.Context(), userID, spoonacularID)
	if err != nil {
		slog.Error("like toggle failed", "user_id", userID.Hex(), "spoonacular_id", spoonacularID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to like/unlike recipe"})
		return
	}

	message := "Recipe unliked"
	if liked {
		message = "Recipe liked"
	}
	c.JSON(http.StatusOK, api.LikeResponse{Message: message, Liked: liked})
}

// LikedRecipes はliked一覧エンドポイントを処理します。
//
// エンドポイント例:
// GET /api/liked-recipes
func (h *LikeHandler) LikedRecipes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	details, err := h.uc.LikedRecipes(c.Request.Context(), userID)
	if err != nil {
		slog.Error("liked recipes failed", "user_id", userID.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch liked recipes"})
		return
	}

	c.JSON(http.StatusOK, details)
}
