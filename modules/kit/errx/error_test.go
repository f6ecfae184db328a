package errx

import (
	"errors"
	"testing"
)

func TestError_Is_只按code比较(t *testing.T) {
	e1 := NewBiz("CELL_X", "a").WithData("x", 1).WithCause(errors.New("c1"))
	e2 := NewBiz("CELL_X", "b").WithData("y", 2)
	if !errors.Is(e1, e2) {
		t.Fatalf("期望同 code 的错误 errors.Is 为 true, e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("CELL_Y", "a")) {
		t.Fatalf("期望不同 code 的错误 errors.Is 为 false")
	}
}

func TestError_业务错误不带栈(t *testing.T) {
	cause := errors.New("boom")
	err := NewBiz("BIZ", "x").WithCause(cause)
	if err.Stack() != nil {
		t.Fatalf("期望业务错误不捕获栈")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链保留, err=%v", err)
	}
}

func TestError_系统错误只捕获一次栈(t *testing.T) {
	inner := NewSys("SYS_A", "a").WithCause(errors.New("io"))
	if len(inner.Stack()) == 0 {
		t.Fatalf("期望系统错误捕获栈")
	}
	outer := NewSys("SYS_B", "b").WithCause(inner)
	if outer.Stack() != nil {
		t.Fatalf("期望下层已有栈时上层不重复捕获")
	}
}

func TestError_哨兵不被派生修改(t *testing.T) {
	_ = ErrInvalidParam.WithData("field", "x")
	if ErrInvalidParam.Data() != nil {
		t.Fatalf("期望哨兵错误 data 保持为空, got=%v", ErrInvalidParam.Data())
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := NewSys(CodeInternal, "").WithCause(ErrTimeout)
	if got := CodeOf(wrapped); got != CodeInternal {
		t.Fatalf("CodeOf got=%q want=%q", got, CodeInternal)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("CodeOf plain got=%q", got)
	}
}
