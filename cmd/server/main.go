package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/router"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	likesadapters "recipe_backend/internal/feature/likes/adapters"
	likeshandler "recipe_backend/internal/feature/likes/transport/handler"
	likesusecase "recipe_backend/internal/feature/likes/usecase"
	recipeshandler "recipe_backend/internal/feature/recipes/transport/handler"
	recipesusecase "recipe_backend/internal/feature/recipes/usecase"
	"recipe_backend/internal/platform/cache"
	platformhttp "recipe_backend/internal/platform/http"
	jwtmw "recipe_backend/internal/platform/jwt"
	platformmongo "recipe_backend/internal/platform/mongo"
	platformredis "recipe_backend/internal/platform/redis"
	"recipe_backend/internal/platform/spoonacular"
)

const (
	// tokenExpiration は発行するJWTトークンの有効期間です。
	tokenExpiration = 24 * time.Hour
	// defaultPort は未指定時のリスンポートです。
	defaultPort = "5000"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 必須の環境変数は起動時にチェックし、欠けていれば即終了する
	for _, key := range []string{"MONGODB_URI", "SPOONACULAR_API_KEY", jwtmw.EnvKeyJWTSecret} {
		if os.Getenv(key) == "" {
			log.Fatalf("[FATAL] %s is not set", key)
		}
	}

	// MongoDB
	mongoClient, err := platformmongo.NewMongoClient()
	if err != nil {
		log.Fatalf("[FATAL] failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to disconnect MongoDB client:", err)
		}
	}()
	db := mongoClient.Database(databaseName())

	// Redis（任意: 接続できなければキャッシュなしで稼働する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMongo(db)
	recipeRepo := likesadapters.NewRecipeMongo(db)

	// ユニークインデックスを保証（username/email/spoonacularId）
	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("[FATAL] failed to create user indexes: %v", err)
	}
	if err := recipeRepo.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("[FATAL] failed to create recipe indexes: %v", err)
	}

	// 外部APIゲートウェイ
	spoonCfg := spoonacular.LoadConfig()
	gateway := spoonacular.NewClient(spoonCfg, platformhttp.NewHTTPClient(spoonCfg.Timeout))

	// Redisキャッシュでラップ（詳細取得のみ短TTLでキャッシュ）
	cachedGateway := cache.NewCachingRecipeGateway(rdb, 5*time.Minute, gateway, "recipes")

	// JWTジェネレーター
	tokenGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenExpiration)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	recipesUC := recipesusecase.NewRecipesUsecase(cachedGateway)
	likeUC := likesusecase.NewLikeUsecase(userRepo, recipeRepo, cachedGateway)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipesH := recipeshandler.NewRecipesHandler(recipesUC)
	likesH := likeshandler.NewLikeHandler(likeUC)

	// ルータ生成（CORS込み）
	router := router.NewRouter(authH, recipesH, likesH)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// databaseName はMONGODB_DB、未指定時はデフォルト名を返します。
func databaseName() string {
	if name := os.Getenv("MONGODB_DB"); name != "" {
		return name
	}
	return "recipe_backend"
}
