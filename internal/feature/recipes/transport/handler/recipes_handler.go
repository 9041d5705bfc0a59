// Package handler はrecipesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// RecipesUsecase はレシピ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecipesUsecase interface {
	Search(ctx context.Context, query string) ([]entity.RecipeSummary, error)
	GetDetails(ctx context.Context, externalID int64) (*entity.RecipeDetail, error)
}

// RecipesHandler はレシピ検索・詳細取得のHTTPリクエストを処理します。
type RecipesHandler struct {
	uc RecipesUsecase
}

// NewRecipesHandler は指定されたusecaseでRecipesHandlerの新しいインスタンスを生成します。
func NewRecipesHandler(uc RecipesUsecase) *RecipesHandler {
	return &RecipesHandler{uc: uc}
}

// Search はレシピ検索エンドポイントを処理します。
// nameクエリが未指定の場合はランダムなレシピを返します。
//
// エンドポイント例:
// GET /api/recipes/search?name=pasta
func (h *RecipesHandler) Search(c *gin.Context) {
	name := c.Query("name")

	summaries, err := h.uc.Search(c.Request.Context(), name)
	if err != nil {
		slog.Error("recipe search failed", "query", name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetDetails はレシピ詳細エンドポイントを処理します。
// 外部APIに該当IDが存在しない場合は404を返します。
//
// エンドポイント例:
// GET /api/recipes/716429
func (h *RecipesHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid recipe id"})
		return
	}

	detail, err := h.uc.GetDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Recipe not found"})
			return
		}
		slog.Error("recipe details failed", "id", id, "error", err)
		// 診断用に下層のエラーメッセージを付与する
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error:   "Failed to fetch recipe details",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
