package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "attendbot/errors"
	"attendbot/services/logger"
	"attendbot/validator"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	defaultPort         = "8083"
	defaultReminderCron = "0 19 * * 1-5"
)

// Config cấu hình của bot, đọc từ biến môi trường
type Config struct {
	Env   string `validate:"omitempty,oneof=dev qc prod"`
	Port  string `validate:"required,numeric"`
	Store string `validate:"required,oneof=postgres memory"`

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	DiscordApplicationID string
	DiscordBotToken      string
	DiscordPublicKey     string `validate:"omitempty,hexadecimal,len=64"`

	// CORSAllowedOrigins rỗng thì cho phép mọi origin, không kèm credentials
	CORSAllowedOrigins []string `validate:"dive,http_url"`

	ReminderCron string `validate:"required"`
	LogLevel     logger.Level
	LogDir       string
}

// LoadEnv nạp file .env nếu có
func LoadEnv(log logger.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Debug("Không thể nạp file .env, sử dụng biến môi trường hệ thống: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Load đọc Config từ môi trường và kiểm tra tính hợp lệ
func Load() (*Config, error) {
	cfg := &Config{
		Env:                  strings.ToLower(GetEnv("ENV")),
		Port:                 getEnvDefault("PORT", defaultPort),
		Store:                strings.ToLower(getEnvDefault("STORE", StorePostgres)),
		RedisAddr:            GetEnv("REDIS_ADDR"),
		RedisUser:            GetEnv("REDIS_USER"),
		RedisPassword:        GetEnv("REDIS_PASSWORD"),
		DiscordApplicationID: GetEnv("DISCORD_APPLICATION_ID"),
		DiscordBotToken:      GetEnv("DISCORD_BOT_TOKEN"),
		DiscordPublicKey:     strings.TrimSpace(GetEnv("DISCORD_PUBLIC_KEY")),
		ReminderCron:         getEnvDefault("REMINDER_CRON", defaultReminderCron),
		LogLevel:             logger.ParseLevel(GetEnv("LOG_LEVEL")),
		LogDir:               GetEnv("LOG_DIR"),
		CORSAllowedOrigins:   splitList(GetEnv("CORS_ALLOWED_ORIGINS")),
	}
	if err := validator.StructWithCode(cfg, apperrors.ErrCodeInvalidConfig, "cấu hình không hợp lệ"); err != nil {
		return nil, err
	}
	if cfg.Store == StorePostgres && cfg.Env == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidConfig, "cần ENV (dev|qc|prod) khi STORE=postgres", nil)
	}
	return cfg, nil
}

// RequireDiscordAPI kiểm tra cấu hình cần cho việc đăng ký lệnh
func (c *Config) RequireDiscordAPI() error {
	if c.DiscordApplicationID == "" || c.DiscordBotToken == "" {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidConfig,
			"cần DISCORD_APPLICATION_ID và DISCORD_BOT_TOKEN", nil)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("env=%s port=%s store=%s redis=%t", c.Env, c.Port, c.Store, c.RedisAddr != "")
}
