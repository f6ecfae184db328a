package http

import (
	"LuxAI/internal/game/actors"
	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/transport"
	"LuxAI/modules/kit/errx"
	"errors"
)

var codeTable = map[errx.Code]int{
	domain.CodeCellOutOfBounds:     transport.NotFound,
	domain.CodeUnknownResourceType: transport.InvalidParam,
	domain.CodeUnitIDConflict:      transport.Conflict,
	errx.CodeInvalidParam:          transport.InvalidParam,
	actors.CodeMatchNotOnline:      transport.Unavailable,
	errx.CodeUnavailable:           transport.Unavailable,
	errx.CodeTimeout:               transport.Timeout,
}

// mapError 返回业务码、对外提示语，以及是否属于系统错误。
func mapError(err error) (code int, msg string, sys bool) {
	var e *errx.Error
	if !errors.As(err, &e) {
		return transport.SystemError, "internal error", true
	}
	code, ok := codeTable[e.Code()]
	if !ok {
		code = transport.SystemError
	}
	msg = e.Msg()
	if msg == "" {
		msg = e.CodeText()
	}
	return code, msg, code >= transport.SystemError || e.IsSys()
}
