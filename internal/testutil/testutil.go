package testutil

import (
	"context"
	"fmt"
	"log"

	"schedulink-backend/config"
	"schedulink-backend/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase 連線測試資料庫並套用 migration
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}
	log.Println("Test database connected successfully")

	if err := database.Migrate(&cfg.Database); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %v", err)
	}

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %v", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		rdb.Close()
		log.Println("Test redis closed")
	}
	return rdb, cleanup, nil
}
