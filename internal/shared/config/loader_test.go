package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type sample struct {
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
	Tags    []string      `mapstructure:"tags"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRead_解码时长和切片(t *testing.T) {
	p := writeFile(t, t.TempDir(), "conf.yml", "name: lux\ntimeout: 3s\ntags: a,b\nlog:\n  level: debug\n")

	var out sample
	if err := Read(p, &out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Name != "lux" || out.Timeout != 3*time.Second || out.Log.Level != "debug" {
		t.Fatalf("unexpected config: %+v", out)
	}
	if len(out.Tags) != 2 || out.Tags[1] != "b" {
		t.Fatalf("unexpected tags: %v", out.Tags)
	}
}

func TestRead_环境变量覆盖(t *testing.T) {
	p := writeFile(t, t.TempDir(), "conf.yml", "log:\n  level: info\n")
	t.Setenv("LUXTEST_LOG_LEVEL", "warn")

	var out sample
	if err := Read(p, &out, WithEnvPrefix("LUXTEST")); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Log.Level != "warn" {
		t.Fatalf("期望环境变量覆盖 log.level, got=%q", out.Log.Level)
	}
}

func TestRead_文件不存在(t *testing.T) {
	var out sample
	if err := Read(filepath.Join(t.TempDir(), "nope.yml"), &out); err == nil {
		t.Fatalf("期望返回错误")
	}
}

func TestResolve_向上查找(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "configs/conf.yml", "name: x\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	got, err := Resolve("configs/conf.yml")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	gotReal, _ := filepath.EvalSymlinks(got)
	wantReal, _ := filepath.EvalSymlinks(want)
	if gotReal != wantReal {
		t.Fatalf("Resolve got=%q want=%q", gotReal, wantReal)
	}
}

func TestResolve_不存在(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Resolve("configs/definitely-missing.yml"); err == nil {
		t.Fatalf("期望找不到配置时返回错误")
	}
}
