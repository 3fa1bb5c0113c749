package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendbot/models"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultReportCacheTTL = 30 * time.Minute

// ReportCache lưu kết quả báo cáo theo user và khoảng thời gian.
// Set chỉ ghi khi generation của user chưa đổi kể từ lúc đọc bằng Generation.
type ReportCache interface {
	Generation(ctx context.Context, userID string) (int64, error)
	Get(ctx context.Context, userID string, r DateRange) ([]models.DaySummary, bool, error)
	Set(ctx context.Context, userID string, gen int64, r DateRange, days []models.DaySummary) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisReportCache cache báo cáo trên redis, xóa toàn bộ key của user khi có ghi mới
type RedisReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisReportCache(rdb *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = DefaultReportCacheTTL
	}
	return &RedisReportCache{rdb: rdb, ttl: ttl}
}

var errStaleReport = errors.New("report generation changed")

func reportCacheKey(userID string, r DateRange) string {
	return fmt.Sprintf("attendance_report:%s:%d:%d", userID, r.Start.UnixMilli(), r.End.UnixMilli())
}

func reportIndexKey(userID string) string {
	return fmt.Sprintf("attendance_report_keys:%s", userID)
}

func reportGenerationKey(userID string) string {
	return fmt.Sprintf("attendance_report_gen:%s", userID)
}

type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, cmd redisGetter, userID string) (int64, error) {
	gen, err := cmd.Get(ctx, reportGenerationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisReportCache) Generation(ctx context.Context, userID string) (int64, error) {
	return readGeneration(ctx, c.rdb, userID)
}

func (c *RedisReportCache) Get(ctx context.Context, userID string, r DateRange) ([]models.DaySummary, bool, error) {
	var days []models.DaySummary
	found, err := getFromRedis(ctx, c.rdb, reportCacheKey(userID, r), &days)
	if err != nil || !found {
		return nil, false, err
	}
	return days, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, userID string, gen int64, r DateRange, days []models.DaySummary) error {
	if days == nil {
		days = []models.DaySummary{}
	}
	dataJSON, err := json.Marshal(days)
	if err != nil {
		return err
	}
	key := reportCacheKey(userID, r)
	index := reportIndexKey(userID)

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleReport
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, dataJSON, c.ttl)
			pipe.SAdd(ctx, index, key)
			pipe.Expire(ctx, index, c.ttl)
			return nil
		})
		return err
	}, reportGenerationKey(userID))

	// có ghi mới trong lúc đọc: bỏ qua, lần đọc sau sẽ lấy dữ liệu mới
	if errors.Is(err, errStaleReport) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisReportCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.rdb.Incr(ctx, reportGenerationKey(userID)).Err(); err != nil {
		return err
	}
	index := reportIndexKey(userID)
	keys, err := c.rdb.SMembers(ctx, index).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return c.rdb.Del(ctx, append(keys, index)...).Err()
}

// Hàm lấy data từ Redis, found=false khi key không tồn tại
func getFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

// NopReportCache dùng khi không cấu hình redis
type NopReportCache struct{}

func (NopReportCache) Generation(context.Context, string) (int64, error) {
	return 0, nil
}

func (NopReportCache) Get(context.Context, string, DateRange) ([]models.DaySummary, bool, error) {
	return nil, false, nil
}

func (NopReportCache) Set(context.Context, string, int64, DateRange, []models.DaySummary) error {
	return nil
}

func (NopReportCache) Invalidate(context.Context, string) error {
	return nil
}
