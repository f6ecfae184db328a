package config

import (
	"os"
	"path/filepath"
)

// Load 解析配置路径并反序列化到 out，失败直接 panic，只在进程启动时调用。
//
// 约定：
//  1. cfgName 为绝对路径时直接使用；
//  2. 相对路径先按当前目录拼接，不存在则从当前目录逐级向上查找同名相对路径。
func Load(cfgName string, out any, opts ...Option) {
	path, err := Resolve(cfgName)
	if err != nil {
		panic(err)
	}
	if err := Read(path, out, opts...); err != nil {
		panic(err)
	}
}

func Resolve(cfgName string) (string, error) {
	if filepath.IsAbs(cfgName) {
		if !fileExist(cfgName) {
			return "", &NotFoundError{Name: cfgName}
		}
		return cfgName, nil
	}
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := curDir
	for {
		candidate := filepath.Join(dir, cfgName)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &NotFoundError{Name: cfgName, From: curDir}
		}
		dir = parent
	}
}

type NotFoundError struct {
	Name string
	From string
}

func (e *NotFoundError) Error() string {
	if e.From == "" {
		return "config file not exist: " + e.Name
	}
	return "config file not exist, searched " + e.Name + " upward from: " + e.From
}

func fileExist(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
