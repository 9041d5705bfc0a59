// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered user in the system.
// It contains authentication credentials and the set of recipes the user liked.
type User struct {
	// ID is the unique identifier for the user.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// Username is the user's display name.
	// It must be unique across all users (3-50 characters).
	Username string `bson:"username"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercased.
	Email string `bson:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `bson:"password"`

	// LikedRecipes holds references to local recipe records the user liked.
	// Membership is mutated only by the like toggle; duplicates must not accumulate.
	LikedRecipes []bson.ObjectID `bson:"likedRecipes"`

	// CreatedAt is the timestamp when the user was created. Set once, immutable.
	CreatedAt time.Time `bson:"createdAt"`
}

// HasLiked reports whether the given recipe record is in the user's liked set.
func (u *User) HasLiked(recipeID bson.ObjectID) bool {
	for _, id := range u.LikedRecipes {
		if id == recipeID {
			return true
		}
	}
	return false
}
