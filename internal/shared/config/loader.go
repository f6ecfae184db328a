package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type options struct {
	envPrefix string
	onChange  func(fsnotify.Event, error)
	mu        sync.Locker
}

type Option func(*options)

// WithEnvPrefix 打开环境变量覆盖，例如前缀 LUX 时 LUX_LOG_LEVEL 覆盖 log.level。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// WithWatch 监听文件变更并重新 Unmarshal 到同一个 out。
// mu 在重新加载期间持有，读方需要用同一把锁。
func WithWatch(mu sync.Locker, onChange func(fsnotify.Event, error)) Option {
	return func(o *options) {
		o.mu = mu
		o.onChange = onChange
	}
}

func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))
}

// Read 读取单个配置文件到 out。
func Read(path string, out any, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(out, decodeHook()); err != nil {
		return fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	if o.onChange != nil {
		// todo 热更新只覆盖文件里出现的 key，删掉的 key 会保留旧值
		v.OnConfigChange(func(e fsnotify.Event) {
			if o.mu != nil {
				o.mu.Lock()
				defer o.mu.Unlock()
			}
			o.onChange(e, v.Unmarshal(out, decodeHook()))
		})
		v.WatchConfig()
	}
	return nil
}
