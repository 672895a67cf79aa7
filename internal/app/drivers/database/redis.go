package database

import (
	"context"
	"fmt"
	"healthapp-admin/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the session store backend. A connection failure
// is returned rather than fatal so the console can fall back to the
// in-memory session store.
func NewRedisClient(driverConfig *config.DriverConfig) (*redis.Client, error) {
	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return rdb, nil
}
