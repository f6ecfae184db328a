package errx

// 系统类错误码，跨包统一；业务域错误码由各业务包自己定义。
const (
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeUnavailable  Code = "SERVICE_UNAVAILABLE"
	CodeTimeout      Code = "TIMEOUT"
	CodeInvalidParam Code = "INVALID_PARAM"
)

var (
	ErrInternal     = NewSys(CodeInternal, "internal error")
	ErrUnavailable  = NewSys(CodeUnavailable, "service unavailable")
	ErrTimeout      = NewSys(CodeTimeout, "request timeout")
	ErrInvalidParam = NewBiz(CodeInvalidParam, "invalid parameter")
)
