package entity

import "LuxAI/modules/kit/errx"

var errInvalidUnit = errx.ErrInvalidParam.WithData("field", "unit")
