package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Routing  RoutingConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	MatrixCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

type RoutingConfig struct {
	BaseSpeedKmph      float64
	FuelEfficiencyKmpl float64
	FuelPricePerLiter  float64
	CO2KgPerLiter      float64
	TwoOptMaxPasses    int
	RandomSeed         int64
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MatrixCacheTTL: time.Duration(viper.GetInt("MATRIX_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Routing: RoutingConfig{
			BaseSpeedKmph:      viper.GetFloat64("ROUTING_BASE_SPEED_KMPH"),
			FuelEfficiencyKmpl: viper.GetFloat64("ROUTING_FUEL_EFFICIENCY_KMPL"),
			FuelPricePerLiter:  viper.GetFloat64("ROUTING_FUEL_PRICE_PER_LITER"),
			CO2KgPerLiter:      viper.GetFloat64("ROUTING_CO2_KG_PER_LITER"),
			TwoOptMaxPasses:    viper.GetInt("ROUTING_TWO_OPT_MAX_PASSES"),
			RandomSeed:         viper.GetInt64("ROUTING_RANDOM_SEED"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.MatrixCacheTTL == 0 {
		cfg.Cache.MatrixCacheTTL = 3600 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-optimization-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Routing.BaseSpeedKmph == 0 {
		cfg.Routing.BaseSpeedKmph = 35
	}
	if cfg.Routing.FuelEfficiencyKmpl == 0 {
		cfg.Routing.FuelEfficiencyKmpl = 12
	}
	if cfg.Routing.FuelPricePerLiter == 0 {
		cfg.Routing.FuelPricePerLiter = 95
	}
	if cfg.Routing.CO2KgPerLiter == 0 {
		cfg.Routing.CO2KgPerLiter = 2.31
	}
	if cfg.Routing.TwoOptMaxPasses == 0 {
		cfg.Routing.TwoOptMaxPasses = 1000
	}
	if cfg.Routing.RandomSeed == 0 {
		cfg.Routing.RandomSeed = 42
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
