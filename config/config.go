package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crewpulse/models"
)

var (
	DB        *gorm.DB
	Redis     *redis.Client
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment    string      `json:"environment"`
	ServerPort     string      `json:"server_port"`
	JWTSecret      string      `json:"-"`
	SentryDSN      string      `json:"-"`
	DBHost         string      `json:"db_host"`
	DBPort         string      `json:"db_port"`
	DBUser         string      `json:"db_user"`
	DBPassword     string      `json:"-"`
	DBName         string      `json:"db_name"`
	DBSSLMode      string      `json:"db_ssl_mode"`
	DBMaxIdleConns int         `json:"db_max_idle_conns"`
	DBMaxOpenConns int         `json:"db_max_open_conns"`
	Redis          RedisConfig `json:"redis"`

	// Tick driver settings
	TickInterval  time.Duration `json:"tick_interval"`
	TickLockTTL   time.Duration `json:"tick_lock_ttl"`
	RateLimitTick int           `json:"rate_limit_tick"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "crewpulse"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		TickInterval:  getEnvAsDuration("TICK_INTERVAL", time.Minute),
		TickLockTTL:   getEnvAsDuration("TICK_LOCK_TTL", 5*time.Minute),
		RateLimitTick: getEnvAsInt("RATE_LIMIT_TICK", 5),
	}

	// Validate required configurations
	if AppConfig.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if AppConfig.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	logConfig()
	return nil
}

func ConnectDB() error {
	log.Println("Attempting to connect to database...")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBUser,
		AppConfig.DBPassword,
		AppConfig.DBName,
		AppConfig.DBSSLMode,
	)
	log.Println("Using connection string:", maskPassword(dsn))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(AppConfig.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("✅ Successfully connected to the database")
	log.Println("🔄 Starting database migration...")
	if err := models.Migrate(DB); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	log.Println("✅ Database migration completed")
	return nil
}

// ConnectRedis initializes the shared Redis client used for tick locking
// and rate limiting. Optional: when disabled, tick locking degrades to
// best-effort in-process locking.
func ConnectRedis() error {
	if !AppConfig.Redis.Enabled {
		log.Println("Redis disabled, skipping connection")
		return nil
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     AppConfig.Redis.Address,
		Password: AppConfig.Redis.Password,
		DB:       AppConfig.Redis.DB,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("✅ Successfully connected to Redis")
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func maskPassword(dsn string) string {
	const passwordMarker = "password="
	startIdx := strings.Index(dsn, passwordMarker)
	if startIdx == -1 {
		return dsn
	}

	startIdx += len(passwordMarker)
	endIdx := strings.IndexAny(dsn[startIdx:], " ")
	if endIdx == -1 {
		return dsn[:startIdx] + "*****"
	}
	return dsn[:startIdx] + "*****" + dsn[startIdx+endIdx:]
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Database: %s@%s:%s/%s",
		AppConfig.DBUser,
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBName)
	log.Printf("Redis enabled: %t", AppConfig.Redis.Enabled)
	log.Printf("Tick interval: %s", AppConfig.TickInterval)
}
