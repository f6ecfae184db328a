package serverconfig

import "time"

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Logic      LogicConfig      `yaml:"logic" mapstructure:"logic"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type MongoDBConfig struct {
	URI            string        `yaml:"uri" mapstructure:"uri"`
	Database       string        `yaml:"database" mapstructure:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

type MySQLConfig struct {
	Host          string        `yaml:"host" mapstructure:"host"`
	Port          int           `yaml:"port" mapstructure:"port"`
	User          string        `yaml:"user" mapstructure:"user"`
	Password      string        `yaml:"password" mapstructure:"password"`
	DBName        string        `yaml:"dbname" mapstructure:"dbname"`
	Charset       string        `yaml:"charset" mapstructure:"charset"`
	MaxIdle       int           `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn       int           `yaml:"max_conn" mapstructure:"max_conn"`
	SlowThreshold time.Duration `yaml:"slow_threshold" mapstructure:"slow_threshold"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type LogicConfig struct {
	// MatchConfig 对局规则配置文件路径
	MatchConfig string `yaml:"match_config" mapstructure:"match_config"`
	// Store: memory / mongodb / mysql
	Store       string        `yaml:"store" mapstructure:"store"`
	FlushEvery  time.Duration `yaml:"flush_every" mapstructure:"flush_every"`
	AskTimeout  time.Duration `yaml:"ask_timeout" mapstructure:"ask_timeout"`
	// IdleTimeout 对局 Actor 空闲多久后卸载
	IdleTimeout time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	NodeID      int64         `yaml:"node_id" mapstructure:"node_id"`
}

const (
	StoreMemory  = "memory"
	StoreMongoDB = "mongodb"
	StoreMySQL   = "mysql"
)
