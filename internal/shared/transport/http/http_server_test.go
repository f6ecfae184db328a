package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"LuxAI/internal/shared/transport/http/middleware"
	"LuxAI/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewHttpServer_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewHttpServer(":0", gin.New(), logx.NewZapLogger(zap.New(core)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.HeaderTraceID, "trace-abc")
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
	if got := w.Header().Get(middleware.HeaderTraceID); got != "trace-abc" {
		t.Fatalf("期望回写 trace id, got=%q", got)
	}
	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条访问日志, got=%d", len(entries))
	}
	if entries[0].ContextMap()["action"] != "GET /healthz" {
		t.Fatalf("unexpected action: %v", entries[0].ContextMap())
	}
}

func TestAccessLog_按响应码分级(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewHttpServer(":0", gin.New(), logx.NewZapLogger(zap.New(core)))
	s.Group("").GET("/bad", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 404, "msg": "not found"})
	})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/bad", nil))

	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("期望 1 条 WARN 访问日志, got=%v", entries)
	}
}
