package domain

import "LuxAI/modules/kit/errx"

const (
	CodeCellOutOfBounds     errx.Code = "CELL_OUT_OF_BOUNDS"
	CodeInvariantViolation  errx.Code = "INVARIANT_VIOLATION"
	CodeUnitIDConflict      errx.Code = "UNIT_ID_CONFLICT"
	CodeUnknownResourceType errx.Code = "UNKNOWN_RESOURCE_TYPE"
)

var (
	ErrCellOutOfBounds    = newBiz(CodeCellOutOfBounds, "cell out of map bounds")
	ErrInvariantViolation = newBiz(CodeInvariantViolation, "cell invariant violated")
	ErrUnitIDConflict     = newBiz(CodeUnitIDConflict, "unit id already maps to another unit")
)

func newBiz(code errx.Code, msg string) *errx.Error {
	return errx.NewBiz(code, msg)
}
