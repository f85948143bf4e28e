package config

// RedisConfig contains the Redis connection configuration. Redis backs
// both the conversation key/value store and the event bus pub/sub.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr: "localhost:6379",
		DB:   0,
	}
}

// LoadRedisConfig loads the Redis section from environment variables.
func LoadRedisConfig() (*RedisConfig, error) {
	cfg := DefaultRedisConfig()

	db, err := getEnvInt("REDIS_DB", cfg.DB)
	if err != nil {
		return nil, err
	}

	cfg.Addr = getEnv("REDIS_ADDR", cfg.Addr)
	cfg.Password = getEnv("REDIS_PASSWORD", cfg.Password)
	cfg.DB = db
	return cfg, nil
}
