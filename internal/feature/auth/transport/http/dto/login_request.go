// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginおよび/api/loginエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenRes はAPIログイン成功時のレスポンスを表します。
type TokenRes struct {
	Token string `json:"token"`
}

// ErrorRes はエラーレスポンスの共通形式です。
type ErrorRes struct {
	Error string `json:"error"`
}
