package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Remote   RemoteConfig
	Log      LogConfig
	Uploads  string
	AuditLog string
}

type ServerConfig struct {
	Port      string
	RootDir   string
	PublicDir string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RemoteConfig holds the command templates the fetch and ping handlers
// splice their input into.
type RemoteConfig struct {
	FetchCommand string
	PingCommand  string
	FetchLimit   int
}

type LogConfig struct {
	Level  string
	Format string
}

// BindEnv maps environment variables onto config keys.
func BindEnv() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.root_dir", "ROOT_DIR")
	viper.BindEnv("server.public_dir", "PUBLIC_DIR")
	viper.BindEnv("uploads.dir", "UPLOADS_DIR")
	viper.BindEnv("audit.log_path", "AUDIT_LOG_PATH")

	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("remote.fetch_command", "FETCH_COMMAND")
	viper.BindEnv("remote.ping_command", "PING_COMMAND")
	viper.BindEnv("remote.fetch_limit", "FETCH_LIMIT")

	viper.BindEnv("log.level", "LOG_LEVEL")
	viper.BindEnv("log.format", "LOG_FORMAT")
}

func setDefaults() {
	viper.SetDefault("server.port", "80")
	viper.SetDefault("server.root_dir", ".")
	viper.SetDefault("server.public_dir", "public")
	viper.SetDefault("uploads.dir", "uploads")
	viper.SetDefault("audit.log_path", "audit.log")

	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.path", "data.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.name", "hacklab")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", time.Minute*5)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("remote.fetch_command", "curl -s")
	viper.SetDefault("remote.ping_command", "ping -c 4")
	viper.SetDefault("remote.fetch_limit", 4000)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
}

// Load reads the current viper state into a Config. Relative paths are
// resolved against server.root_dir.
func Load() *Config {
	setDefaults()

	root, err := filepath.Abs(viper.GetString("server.root_dir"))
	if err != nil {
		root = viper.GetString("server.root_dir")
	}

	return &Config{
		Server: ServerConfig{
			Port:      viper.GetString("server.port"),
			RootDir:   root,
			PublicDir: resolve(root, viper.GetString("server.public_dir")),
		},
		Database: DatabaseConfig{
			Driver:          viper.GetString("database.driver"),
			Path:            resolve(root, viper.GetString("database.path")),
			Host:            viper.GetString("database.host"),
			Port:            viper.GetString("database.port"),
			User:            viper.GetString("database.user"),
			Password:        viper.GetString("database.password"),
			Name:            viper.GetString("database.name"),
			SSLMode:         viper.GetString("database.ssl_mode"),
			MaxOpenConns:    viper.GetInt("database.max_open_conns"),
			MaxIdleConns:    viper.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: viper.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetString("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Remote: RemoteConfig{
			FetchCommand: viper.GetString("remote.fetch_command"),
			PingCommand:  viper.GetString("remote.ping_command"),
			FetchLimit:   viper.GetInt("remote.fetch_limit"),
		},
		Log: LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
		Uploads:  resolve(root, viper.GetString("uploads.dir")),
		AuditLog: resolve(root, viper.GetString("audit.log_path")),
	}
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
