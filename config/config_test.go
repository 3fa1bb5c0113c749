package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "attendbot/errors"
	"attendbot/services"
	"attendbot/services/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPublicKey = strings.Repeat("ab", 32)

func setBaseEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DISCORD_PUBLIC_KEY", testPublicKey)
	t.Setenv("REMINDER_CRON", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DIR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "0 19 * * 1-5", cfg.ReminderCron)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE", "mongo")
	_, err := Load()
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig))

	setBaseEnv(t)
	t.Setenv("DISCORD_PUBLIC_KEY", "xyz")
	_, err = Load()
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig))

	setBaseEnv(t)
	t.Setenv("STORE", "postgres")
	_, err = Load()
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig))

	setBaseEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "not an origin")
	_, err = Load()
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	preflight := func(h gin.HandlerFunc, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(h)
		r.POST("/notify", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodOptions, "/notify", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight(CORS(nil), "https://evil.example")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	restricted := CORS([]string{"https://dash.example"})
	w = preflight(restricted, "https://dash.example")
	assert.Equal(t, "https://dash.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight(restricted, "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitList(" https://a.example, ,https://b.example "))
}

func TestGetDBConfigByEnv(t *testing.T) {
	t.Setenv("QC_DB_USER", "bot")
	t.Setenv("QC_DB_PASSWORD", "pw")
	t.Setenv("QC_DB_HOST", "db.local")
	t.Setenv("QC_DB_PORT", "5432")
	t.Setenv("QC_DB_NAME", "attendance")
	t.Setenv("QC_DB_SSLMODE", "disable")

	dsn, err := getDBConfigByEnv("qc")
	require.NoError(t, err)
	assert.Equal(t, "host=db.local user=bot password=pw dbname=attendance port=5432 sslmode=disable TimeZone=Asia/Seoul", dsn)

	_, err = getDBConfigByEnv("staging")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig))
}

func TestRequireDiscordAPI(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireDiscordAPI())
	cfg.DiscordApplicationID, cfg.DiscordBotToken = "1", "t"
	assert.NoError(t, cfg.RequireDiscordAPI())
}

func TestInitAppMemoryWithRedis(t *testing.T) {
	setBaseEnv(t)
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	cfg, err := Load()
	require.NoError(t, err)

	app, err := InitApp(context.Background(), cfg, logger.NopLogger{})
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, &services.MemoryEventStore{}, app.Store)
	assert.NotNil(t, app.Redis)
	assert.NotNil(t, app.Dispatcher)
	assert.NotNil(t, app.Reminder)
}

func TestConnectRedisDisabled(t *testing.T) {
	rdb, err := ConnectRedis(context.Background(), &Config{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
