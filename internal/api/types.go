// Package api はHTTPトランスポート層で共有されるリクエスト/レスポンスDTOを定義します。
package api

// RegisterRequest は/api/auth/registerエンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーション（必須、文字数、メール形式）を行います。
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest は/api/auth/loginエンドポイントのリクエストボディを表します。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ErrorResponse はエラーレスポンスの共通形式です。
// Messageは診断用の詳細メッセージで、付与されるのは一部のエンドポイントのみです。
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse は成功時の汎用メッセージレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時に発行されるトークンを返します。
type TokenResponse struct {
	Token string `json:"token"`
}

// LikeResponse はlikeトグル操作の結果を表します。
// Likedはトグル後の状態を示します。
type LikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}
