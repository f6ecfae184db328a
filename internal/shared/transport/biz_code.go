package transport

// BizCode 响应体里的业务码：0 成功，1~499 业务拒绝，>=500 系统错误。
type BizCode int

const (
	OK           = 0
	InvalidParam = 400
	NotFound     = 404
	Conflict     = 409
	SystemError  = 500
	Unavailable  = 503
	Timeout      = 504
)
