package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// RW or RO. Read-only instances reject writes.
	Mode        string
	CORSOrigins []string
}

type Storage struct {
	Driver string
}

type RedisCache struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	URI    string
	DBName string
}

type Rooms struct {
	CodeAttempts int
}

type Logging struct {
	Level  string
	Format string
}

type Config struct {
	HTTP     HTTPServer
	Storage  Storage
	Redis    RedisCache
	Postgres Postgres
	Mongo    Mongo
	Rooms    Rooms
	Logging  Logging
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMongo    = "mongo"
)

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("%s %v", logtag, err)
	}

	return cfg
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTP:     *newHTTP(),
		Storage:  *newStorage(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Mongo:    *newMongo(),
		Rooms:    *newRooms(),
		Logging:  *newLogging(),
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres, StorageDriverRedis, StorageDriverMongo:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if cfg.HTTP.Mode != "RW" && cfg.HTTP.Mode != "RO" {
		return nil, fmt.Errorf("unknown HTTP_MODE %q", cfg.HTTP.Mode)
	}

	return cfg, nil
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:        getenv("HTTP_PORT", "8080"),
		Host:        getenv("HTTP_HOST", "0.0.0.0"),
		Mode:        strings.ToUpper(getenv("HTTP_MODE", "RW")),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}
}

func newStorage() *Storage {
	return &Storage{
		Driver: strings.ToLower(getenv("STORAGE_DRIVER", StorageDriverPostgres)),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:      getenv("REDIS_PORT", "6379"),
		Host:      getenv("REDIS_HOST", "redis"),
		Password:  getsecret("REDIS_PASSWORD", "shared"),
		DB:        getint("REDIS_DB", 0),
		KeyPrefix: getenv("REDIS_KEY_PREFIX", "dh"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "distancehug"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		URI:    getsecret("MONGO_URL", "mongodb://localhost:27017"),
		DBName: getenv("MONGO_DB_NAME", "distancehug"),
	}
}

func newRooms() *Rooms {
	return &Rooms{
		CodeAttempts: getint("ROOM_CODE_ATTEMPTS", 10),
	}
}

func newLogging() *Logging {
	return &Logging{
		Level:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		Format: strings.ToLower(getenv("LOG_FORMAT", "text")),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s = ****\n", logtag, key)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not a number. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
