package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Upload        UploadConfig
	FeatureFlags  FeatureFlagsConfig
	GoogleMaps    GoogleMapsConfig
	OpenAI        OpenAIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VALUERPRO_APP_ENV" required:"true"`
	Port         string `envconfig:"VALUERPRO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VALUERPRO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VALUERPRO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VALUERPRO_DB_DSN"`
	Driver string `envconfig:"VALUERPRO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VALUERPRO_DB_HOST"`
	LegacyPort     int    `envconfig:"VALUERPRO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VALUERPRO_DB_USER"`
	LegacyPassword string `envconfig:"VALUERPRO_DB_PASSWORD"`
	LegacyName     string `envconfig:"VALUERPRO_DB_NAME"`
	LegacySSLMode  string `envconfig:"VALUERPRO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VALUERPRO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VALUERPRO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VALUERPRO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VALUERPRO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VALUERPRO_REDIS_URL"`
	Address      string        `envconfig:"VALUERPRO_REDIS_ADDR"`
	Password     string        `envconfig:"VALUERPRO_REDIS_PASSWORD"`
	DB           int           `envconfig:"VALUERPRO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VALUERPRO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VALUERPRO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VALUERPRO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VALUERPRO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VALUERPRO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint has been configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"VALUERPRO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VALUERPRO_JWT_ISSUER" default:"valuerpro"`
	ExpirationMinutes int    `envconfig:"VALUERPRO_JWT_EXPIRATION_MINUTES" default:"30"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"VALUERPRO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"VALUERPRO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"VALUERPRO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"VALUERPRO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"VALUERPRO_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"VALUERPRO_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"VALUERPRO_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
}

type UploadConfig struct {
	Dir               string   `envconfig:"VALUERPRO_UPLOAD_DIR" default:"uploads"`
	MaxFileSizeMB     int      `envconfig:"VALUERPRO_MAX_UPLOAD_MB" default:"10"`
	AllowedExtensions []string `envconfig:"VALUERPRO_UPLOAD_ALLOWED_EXTENSIONS" default:".jpg,.jpeg,.png,.pdf,.doc,.docx"`
	MaxBatchFiles     int      `envconfig:"VALUERPRO_UPLOAD_MAX_BATCH_FILES" default:"10"`
}

// MaxFileSizeBytes converts the configured megabyte cap into bytes.
func (u UploadConfig) MaxFileSizeBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"VALUERPRO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"VALUERPRO_AUTO_MIGRATE" default:"false"`
}

type GoogleMapsConfig struct {
	APIKey string `envconfig:"VALUERPRO_GOOGLE_MAPS_API_KEY"`
}

type OpenAIConfig struct {
	APIKey string `envconfig:"VALUERPRO_OPENAI_API_KEY"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.Driver == DriverSQLite {
		db.DSN = "file:valuerpro.db?cache=shared"
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
