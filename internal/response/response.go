package response

// ErrorCode 业务错误码，直接体现在 API 响应的 code 字段
type ErrorCode string

// 错误分类，对应四类可预期的失败
const (
	// 输入错误，调用方可修正
	MissingRequiredField ErrorCode = "missing_required_field"
	UnknownCategory      ErrorCode = "unknown_category"
	UnsluggableTitle     ErrorCode = "unsluggable_title"
	DuplicateSlug        ErrorCode = "duplicate_slug"
	InvalidParameter     ErrorCode = "invalid_parameter"
	// 资源不存在
	NotFound ErrorCode = "not_found"
	// 外部存储失败或超时，对外只返回通用消息
	StoreUnavailable ErrorCode = "store_unavailable"
)

// ErrorBody 非 2xx 响应的统一结构
type ErrorBody struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code,omitempty"`
}
