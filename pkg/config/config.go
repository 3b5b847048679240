package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "MESTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MESTORE_DB_DSN"
	EnvDBHost = "MESTORE_DB_HOST"
	EnvDBUser = "MESTORE_DB_USER"
	EnvDBName = "MESTORE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Admin         AdminConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MESTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"MESTORE_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"MESTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MESTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MESTORE_DB_DSN"`
	Driver string `envconfig:"MESTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MESTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"MESTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MESTORE_DB_USER"`
	LegacyPassword string `envconfig:"MESTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MESTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MESTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MESTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MESTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MESTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MESTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MESTORE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MESTORE_REDIS_ADDR"`
	Password     string        `envconfig:"MESTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MESTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MESTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MESTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MESTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MESTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MESTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MESTORE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MESTORE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MESTORE_JWT_EXPIRATION_MINUTES" default:"1440"`
	SessionTTLMinutes int    `envconfig:"MESTORE_SESSION_TTL_MINUTES" default:"1500"`
}

// SessionTTL returns how long a login session stays registered in Redis.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MESTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MESTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MESTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MESTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MESTORE_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig carries the bootstrap administrator credentials. The admin user
// row is created on first successful login with these credentials.
type AdminConfig struct {
	Username string `envconfig:"MESTORE_ADMIN_USERNAME" required:"true"`
	Password string `envconfig:"MESTORE_ADMIN_PASSWORD" required:"true"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"MESTORE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"MESTORE_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"MESTORE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MESTORE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MESTORE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
