package serverconfig

import (
	"LuxAI/internal/shared/config"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const defaultConfigRelPath = "configs/conf.yml"

var (
	Conf Config

	mu        sync.Mutex
	listeners []func(Config, error)
)

// Load 读取 configs/conf.yml，LUX_ 前缀的环境变量可覆盖同名 key（如 LUX_LOGIC_STORE）。
// 文件变更后重新解码并通知 OnChange 注册的回调，只有 log.level 这类运行期可调的项才应该被消费。
func Load() {
	config.Load(defaultConfigRelPath, &Conf,
		config.WithEnvPrefix("LUX"),
		config.WithWatch(&mu, notify),
	)
	Conf.applyDefaults()
}

// OnChange 注册热更新回调，回调在持锁状态下执行，不要在里面再调 Snapshot。
func OnChange(fn func(Config, error)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

// Snapshot 返回当前配置的副本。
func Snapshot() Config {
	mu.Lock()
	defer mu.Unlock()
	return Conf
}

func notify(_ fsnotify.Event, err error) {
	Conf.applyDefaults()
	for _, fn := range listeners {
		fn(Conf, err)
	}
}

func (c *Config) applyDefaults() {
	if c.Logic.Store == "" {
		c.Logic.Store = StoreMemory
	}
	if c.Logic.MatchConfig == "" {
		c.Logic.MatchConfig = "configs/match.yml"
	}
	if c.HTTPServer.Port == 0 {
		c.HTTPServer.Port = 8090
	}
}
