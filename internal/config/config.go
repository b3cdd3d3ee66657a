package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL string // 指定があればPOSTGRES_*より優先

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	PoolMaxSize        int // 最大接続数
	PoolMinIdle        int // アイドル接続数
	PoolTimeoutSeconds int // 接続の取得タイムアウト
}

// Loadは環境変数から読む。未設定はローカル開発向けのデフォルト
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	poolMax, err := atoiDefault("POOL_MAX_SIZE", 10)
	if err != nil {
		return Config{}, err
	}
	poolIdle, err := atoiDefault("POOL_MIN_IDLE", 2)
	if err != nil {
		return Config{}, err
	}
	poolTimeout, err := atoiDefault("POOL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		PoolMaxSize:        poolMax,
		PoolMinIdle:        poolIdle,
		PoolTimeoutSeconds: poolTimeout,
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
