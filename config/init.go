package config

import (
	"context"
	"io"
	"time"

	"attendbot/commands"
	"attendbot/jobs"
	"attendbot/services"
	"attendbot/services/logger"
	"attendbot/services/notification"
	"attendbot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// App gom các thành phần đã khởi tạo của bot
type App struct {
	Config     *Config
	Logger     logger.Logger
	DB         *gorm.DB
	Redis      *redis.Client
	Melody     *melody.Melody
	Cron       *cron.Cron
	Store      services.EventStore
	Attendance *services.AttendanceService
	Reports    *services.ReportService
	Dispatcher *commands.Dispatcher
	Reminder   *jobs.Reminder

	closers []io.Closer
}

// NewLogger logger theo LOG_LEVEL, ghi thêm ra file nếu có LOG_DIR
func NewLogger(cfg *Config) (logger.Logger, io.Closer, error) {
	if cfg.LogDir == "" {
		return logger.NewDefaultLogger(cfg.LogLevel), nil, nil
	}
	return logger.NewFileLogger(cfg.LogLevel, cfg.LogDir)
}

// OpenStore mở tầng lưu trữ theo STORE
func OpenStore(cfg *Config, log logger.Logger) (services.EventStore, *gorm.DB, error) {
	if cfg.Store == StoreMemory {
		log.Warn("⚠️ STORE=memory: dữ liệu sẽ mất khi tắt bot")
		return services.NewMemoryEventStore(), nil, nil
	}

	level := gormlogger.Warn
	if cfg.LogLevel == logger.DebugLevel {
		level = gormlogger.Info
	}
	db, err := ConnectDB(cfg.Env, level)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to db")
	return services.NewGormEventStore(db), db, nil
}

// InitApp khởi tạo store, cache, notifier và các service
func InitApp(ctx context.Context, cfg *Config, log logger.Logger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: log,
		Melody: melody.New(),
		Cron:   cron.New(cron.WithLocation(utils.Location())),
	}

	store, db, err := OpenStore(cfg, log)
	if err != nil {
		return nil, err
	}
	app.Store, app.DB = store, db
	if gs, ok := store.(*services.GormEventStore); ok {
		if err := gs.Migrate(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}

	var cache services.ReportCache = services.NopReportCache{}
	rdb, err := ConnectRedis(ctx, cfg)
	if err != nil {
		log.Warn("⚠️ Không kết nối được Redis, bỏ qua cache báo cáo: %v", err)
	} else if rdb != nil {
		log.Info("Kết nối Redis thành công")
		app.Redis = rdb
		app.closers = append(app.closers, rdb)
		cache = services.NewRedisReportCache(rdb, 30*time.Minute)
	}

	notifier := notification.NewMelodyService(app.Melody)

	app.Attendance = services.NewAttendanceService(services.AttendanceServiceOptions{
		Store:    store,
		Cache:    cache,
		Notifier: notifier,
		Logger:   log,
	})
	app.Reports = services.NewReportService(services.ReportServiceOptions{
		Store:  store,
		Cache:  cache,
		Logger: log,
	})
	app.Dispatcher = commands.NewDispatcher(app.Attendance, app.Reports, services.DefaultRand)
	app.Reminder = jobs.NewReminder(app.Attendance, notifier, log)

	log.Info("All components initialized successfully (%s)", cfg)
	return app, nil
}

// NewRouter gin engine với cors cho REST API
func NewRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies(nil)
	return router
}

// CORS cấu hình cors cho nhóm /api/v1, chỉ cho phép origins nếu có cấu hình
func CORS(origins []string) gin.HandlerFunc {
	configCors := cors.DefaultConfig()
	configCors.AllowCredentials = false
	if len(origins) == 0 {
		configCors.AllowAllOrigins = true
	} else {
		configCors.AllowOrigins = origins
	}
	return cors.New(configCors)
}

// Close dừng cron, đóng websocket, redis và db
func (a *App) Close() {
	if a.Cron != nil {
		<-a.Cron.Stop().Done()
	}
	if a.Melody != nil {
		_ = a.Melody.Close()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.Logger.Warn("⚠️ Lỗi khi đóng tài nguyên: %v", err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
