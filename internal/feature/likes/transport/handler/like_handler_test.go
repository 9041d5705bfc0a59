package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	recipesentity "recipe_backend/internal/feature/recipes/domain/entity"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// mockLikeUsecase is a mock implementation of the LikeUsecase interface.
type mockLikeUsecase struct {
	ToggleFunc       func(ctx context.Context, userID bson.ObjectID, spoonacularID int64) (bool, error)
	LikedRecipesFunc func(ctx context.Context, userID bson.ObjectID) ([]recipesentity.RecipeDetail, error)
	toggleCalls      int
}

// Toggle is the mock implementation of the Toggle method.
func (m *mockLikeUsecase) Toggle(ctx context.Context, userID bson.ObjectID, spoonacularID int64) (bool, error) {
	m.toggleCalls++
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, spoonacularID)
	}
	return true, nil
}

// LikedRecipes is the mock implementation of the LikedRecipes method.
func (m *mockLikeUsecase) LikedRecipes(ctx context.Context, userID bson.ObjectID) ([]recipesentity.RecipeDetail, error) {
	if m.LikedRecipesFunc != nil {
		return m.LikedRecipesFunc(ctx, userID)
	}
	return []recipesentity.RecipeDetail{}, nil
}

func TestLikeHandler_Toggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := bson.NewObjectID()

	tests := []struct {
		name           string
		param          string
		contextUserID  any // nil means unauthenticated
		mockToggleFunc func(ctx context.Context, userID bson.ObjectID, spoonacularID int64) (bool, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:          "success: like",
			param:         "42",
			contextUserID: userID.Hex(),
			mockToggleFunc: func(ctx context.Context, gotUser bson.ObjectID, spoonacularID int64) (bool, error) {
				if gotUser != userID {
					t.Errorf("expected user %s, got %s", userID.Hex(), gotUser.Hex())
				}
				if spoonacularID != 42 {
					t.Errorf("expected spoonacularID 42, got %d", spoonacularID)
				}
				return true, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"message": "Recipe liked", "liked": true},
		},
		{
			name:          "success: unlike",
			param:         "42",
			contextUserID: userID.Hex(),
			mockToggleFunc: func(ctx context.Context, gotUser bson.ObjectID, spoonacularID int64) (bool, error) {
				return false, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"message": "Recipe unliked", "liked": false},
		},
		{
			name:           "failure: no authenticated user",
			param:          "42",
			contextUserID:  nil,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "unauthorized"},
		},
		{
			name:           "failure: malformed user id in context",
			param:          "42",
			contextUserID:  "not-a-hex-id",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "unauthorized"},
		},
		{
			name:           "failure: non-numeric recipe id",
			param:          "abc",
			contextUserID:  userID.Hex(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid recipe id"},
		},
		{
			name:          "failure: usecase error",
			param:         "42",
			contextUserID: userID.Hex(),
			mockToggleFunc: func(ctx context.Context, gotUser bson.ObjectID, spoonacularID int64) (bool, error) {
				return false, errors.New("persist user: write failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "Failed to like/unlike recipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockLikeUsecase{ToggleFunc: tt.mockToggleFunc}
			h := NewLikeHandler(mockUC)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/like/"+tt.param, nil)
			c.Params = gin.Params{{Key: "spoonacularId", Value: tt.param}}
			if tt.contextUserID != nil {
				c.Set(jwtmw.ContextUserID, tt.contextUserID)
			}

			h.Toggle(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			for k, v := range tt.expectedBody {
				assert.Equal(t, v, got[k])
			}
		})
	}
}

func TestLikeHandler_LikedRecipes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := bson.NewObjectID()

	t.Run("success: returns detail list", func(t *testing.T) {
		mockUC := &mockLikeUsecase{
			LikedRecipesFunc: func(ctx context.Context, gotUser bson.ObjectID) ([]recipesentity.RecipeDetail, error) {
				return []recipesentity.RecipeDetail{
					{ID: 42, Title: "Carbonara"},
					{ID: 7, Title: "Ramen"},
				}, nil
			},
		}
		h := NewLikeHandler(mockUC)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/liked-recipes", nil)
		c.Set(jwtmw.ContextUserID, userID.Hex())

		h.LikedRecipes(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []recipesentity.RecipeDetail
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "Carbonara", got[0].Title)
		assert.Equal(t, "Ramen", got[1].Title)
	})

	t.Run("failure: no authenticated user", func(t *testing.T) {
		h := NewLikeHandler(&mockLikeUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/liked-recipes", nil)

		h.LikedRecipes(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: usecase error", func(t *testing.T) {
		mockUC := &mockLikeUsecase{
			LikedRecipesFunc: func(ctx context.Context, gotUser bson.ObjectID) ([]recipesentity.RecipeDetail, error) {
				return nil, errors.New("upstream down")
			},
		}
		h := NewLikeHandler(mockUC)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/liked-recipes", nil)
		c.Set(jwtmw.ContextUserID, userID.Hex())

		h.LikedRecipes(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// TestLikeRoutes_Unauthenticated verifies that requests without a bearer token
// are rejected by the middleware before the usecase is ever invoked.
func TestLikeRoutes_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv(jwtmw.EnvKeyJWTSecret, "test-secret")

	mockUC := &mockLikeUsecase{}
	h := NewLikeHandler(mockUC)

	r := gin.New()
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired())
	auth.POST("/like/:spoonacularId", h.Toggle)
	auth.GET("/liked-recipes", h.LikedRecipes)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/like/42"},
		{http.MethodGet, "/api/liked-recipes"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}

	// No mutation happened
	assert.Equal(t, 0, mockUC.toggleCalls)
}
