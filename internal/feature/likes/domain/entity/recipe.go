// Package entity defines the domain entities for the likes feature.
package entity

import "go.mongodb.org/mongo-driver/v2/bson"

// Recipe represents a locally persisted recipe record.
// It is created lazily the first time any user likes the external recipe,
// and is never deleted afterwards.
type Recipe struct {
	// ID is the unique identifier for the local record.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// SpoonacularID is the external API's integer identifier.
	// It is the stable key for finding-or-creating local records.
	SpoonacularID int64 `bson:"spoonacularId"`

	// Title and Image are display fields cached at first like.
	// They are never refreshed afterwards, even if the upstream data changes.
	Title string `bson:"title"`
	Image string `bson:"image"`

	// LikedBy holds references to the users who liked this recipe.
	LikedBy []bson.ObjectID `bson:"likedBy"`
}

// IsLikedBy reports whether the given user is in the recipe's liked-by set.
func (r *Recipe) IsLikedBy(userID bson.ObjectID) bool {
	for _, id := range r.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
