package serverconfig

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestApplyDefaults_空配置(t *testing.T) {
	var c Config
	c.applyDefaults()
	if c.Logic.Store != StoreMemory || c.Logic.MatchConfig != "configs/match.yml" || c.HTTPServer.Port != 8090 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestNotify_回调拿到最新配置(t *testing.T) {
	prevConf, prevListeners := Conf, listeners
	defer func() { Conf, listeners = prevConf, prevListeners }()

	Conf = Config{Log: LogConfig{Level: "debug"}}
	listeners = nil
	var got Config
	OnChange(func(c Config, err error) {
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got = c
	})
	notify(fsnotify.Event{Name: "conf.yml", Op: fsnotify.Write}, nil)

	if got.Log.Level != "debug" || got.Logic.Store != StoreMemory {
		t.Fatalf("unexpected config in callback: %+v", got)
	}
	if Snapshot().Log.Level != "debug" {
		t.Fatalf("snapshot should see current config")
	}
}
