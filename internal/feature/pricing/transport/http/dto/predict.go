// Package dto はpricingフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "strconv"

// PredictReq は/api/predictのリクエストボディです。
// フロントエンドはフォーム値をそのままフラットなJSONオブジェクトとして送るため、
// 値は文字列・数値のどちらでも受け付けます。
type PredictReq map[string]any

// Get は指定キーの値を文字列として返します。
// JSONの数値はfloat64でデコードされるため、整数値は桁落ちなく文字列化します。
func (r PredictReq) Get(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// PredictRes は予測成功時のレスポンスです。
type PredictRes struct {
	Success        bool              `json:"success"`
	PredictedPrice float64           `json:"predicted_price"`
	ShowroomPrice  float64           `json:"showroom_price"`
	Details        map[string]any    `json:"details"`
	Fallbacks      map[string]string `json:"fallbacks,omitempty"`
}

// PredictErrRes は予測失敗時のレスポンスです。
type PredictErrRes struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
