// Package usecase はrecipesフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when the upstream API has no recipe for the given id.
	ErrRecipeNotFound = errors.New("recipe not found")
)
