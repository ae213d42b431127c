package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Mode            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// DefaultJWTSecret 僅供本機開發，release 模式拒絕啟動
const DefaultJWTSecret = "change-me"

var ErrDefaultJWTSecret = errors.New("auth.jwt_secret must be set in release mode")

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

var AppConfig *Config

// LoadConfig 讀取 .env、config.yaml 與環境變數，環境變數優先
func LoadConfig() *Config {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	AppConfig = fromViper(v)
	return AppConfig
}

func LoadTestConfig() *Config {
	v := newViper()
	v.SetDefault("db.port", "5433") // 測試 DB 用 5433 port
	v.SetDefault("db.name", "test_db")
	v.SetDefault("redis.port", "6380") // 測試 Redis 用 6380 port
	v.SetDefault("redis.db", 1)
	v.SetDefault("auth.jwt_secret", "test-secret")
	v.SetDefault("rate_limit.enabled", false)

	// 測試環境以 TEST_ 前綴覆寫，避免誤連正式資料庫
	v.SetEnvPrefix("TEST")
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	_ = v.BindEnv("server.port", "PORT", "SERVER_PORT")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "postgres")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 25)
	v.SetDefault("db.min_conns", 5)
	v.SetDefault("db.auto_migrate", true)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET", "AUTH_JWT_SECRET")
	v.SetDefault("auth.admin_username", "")
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")
	_ = v.BindEnv("auth.admin_username", "ADMIN_USERNAME")
	_ = v.BindEnv("auth.admin_email", "ADMIN_EMAIL")
	_ = v.BindEnv("auth.admin_password", "ADMIN_PASSWORD")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("log.level", "info")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			Mode:            v.GetString("server.mode"),
			AllowedOrigins:  v.GetStringSlice("server.allowed_origins"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("db.host"),
			Port:        v.GetString("db.port"),
			User:        v.GetString("db.user"),
			Password:    v.GetString("db.password"),
			DBName:      v.GetString("db.name"),
			SSLMode:     v.GetString("db.ssl_mode"),
			MaxConns:    v.GetInt32("db.max_conns"),
			MinConns:    v.GetInt32("db.min_conns"),
			AutoMigrate: v.GetBool("db.auto_migrate"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("auth.jwt_secret"),
			TokenTTL:      v.GetDuration("auth.token_ttl"),
			AdminUsername: v.GetString("auth.admin_username"),
			AdminEmail:    v.GetString("auth.admin_email"),
			AdminPassword: v.GetString("auth.admin_password"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("rate_limit.enabled"),
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		LogLevel: v.GetString("log.level"),
	}
}

// Validate 檢查無法安全啟動的設定
func (c *Config) Validate() error {
	if c.Server.Mode == "release" && c.Auth.JWTSecret == DefaultJWTSecret {
		return ErrDefaultJWTSecret
	}
	return nil
}

// DSN 回傳 pgx 使用的 key=value 連線字串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
		"UTC",
	)
}

// MigrateURL 回傳 golang-migrate pgx5 driver 使用的 URL
func (c *DatabaseConfig) MigrateURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
