// Package adapters はlikesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"recipe_backend/internal/feature/likes/domain/entity"
	"recipe_backend/internal/feature/likes/usecase"
)

// recipeMongo はRecipeRepositoryインターフェースのMongoDB実装です。
type recipeMongo struct {
	coll *mongo.Collection
}

// recipeMongoがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*recipeMongo)(nil)

// NewRecipeMongo は指定されたデータベースでrecipeMongoの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewRecipeMongo(db *mongo.Database) *recipeMongo {
	return &recipeMongo{coll: db.Collection("recipes")}
}

// EnsureIndexes はspoonacularIdのユニークインデックスを作成します。
// 起動時に一度呼び出します。
func (r *recipeMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "spoonacularId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindBySpoonacularID は外部IDでローカルレコードを取得します。
// レコードが存在しない場合、usecase.ErrRecipeRecordNotFoundを返します。
func (r *recipeMongo) FindBySpoonacularID(ctx context.Context, spoonacularID int64) (*entity.Recipe, error) {
	var rec entity.Recipe
	if err := r.coll.FindOne(ctx, bson.M{"spoonacularId": spoonacularID}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrRecipeRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Create はローカルレコードをデータベースに追加し、採番されたIDをエンティティに反映します。
func (r *recipeMongo) Create(ctx context.Context, rec *entity.Recipe) error {
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		rec.ID = id
	}
	return nil
}

// UpdateLikedBy はレシピのlikedBy集合全体を置き換えます。
// 単一ドキュメントの原子的書き込みであり、likeトグルの永続化に使用されます。
func (r *recipeMongo) UpdateLikedBy(ctx context.Context, id bson.ObjectID, likedBy []bson.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"likedBy": likedBy}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return usecase.ErrRecipeRecordNotFound
	}
	return nil
}

// FindByIDs は指定されたIDのレコードを入力順を保って取得します。
// 見つからないIDは結果から除外されます。
func (r *recipeMongo) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]entity.Recipe, error) {
	if len(ids) == 0 {
		return []entity.Recipe{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []entity.Recipe
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	// Mongoの$inは順序を保証しないため、入力順に並べ直す
	byID := make(map[bson.ObjectID]entity.Recipe, len(found))
	for _, rec := range found {
		byID[rec.ID] = rec
	}
	out := make([]entity.Recipe, 0, len(ids))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
