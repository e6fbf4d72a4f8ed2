package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devSessionSecret = "dev-only-session-secret"
)

type (
	APP struct {
		Name          string
		Host          string
		Port          string
		Env           string
		SessionSecret string
		SessionTTL    time.Duration
	}
	DB struct {
		User          string
		Password      string
		Name          string
		MaintenanceDB string
		Host          string
		Port          string
		MaxConns      int32
	}
	Admin struct {
		Email      string
		Password   string
		BcryptCost int
	}
	MQ struct {
		Enabled         bool
		ConsumerEnabled bool
		User            string
		Password        string
		Vhost           string
		Host            string
		AmqpPort        string
		Exchange        string
		ExchangeType    string
		QueueName       string
	}

	Config struct {
		App   APP
		DB    DB
		Admin Admin
		MQ    MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, def.String()))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func Load() Config {
	app := APP{
		Name:          getEnv("SERVICE_NAME", "tienda-admin"),
		Host:          getEnv("SERVICE_HOST", ""),
		Port:          getEnv("SERVICE_PORT", "5000"),
		Env:           getEnv("SERVICE_ENV", EnvDevelopment),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 12*time.Hour),
	}
	db := DB{
		User:          getEnv("POSTGRES_USER", "postgres"),
		Password:      getEnv("POSTGRES_PASSWORD", ""),
		Name:          getEnv("POSTGRES_DB", "tienda_de_ropa"),
		MaintenanceDB: getEnv("POSTGRES_MAINTENANCE_DB", "postgres"),
		Host:          getEnv("POSTGRES_HOST", "localhost"),
		Port:          getEnv("POSTGRES_PORT", "5432"),
		MaxConns:      int32(getEnvInt("POSTGRES_MAX_CONNS", 10)),
	}
	admin := Admin{
		Email:      getEnv("ADMIN_EMAIL", "supersu@sistema.com"),
		Password:   getEnv("ADMIN_PASSWORD", "super123"),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
	mq := MQ{
		Enabled:         getEnvBool("RABBITMQ_ENABLED", false),
		ConsumerEnabled: getEnvBool("RABBITMQ_CONSUMER_ENABLED", false),
		User:            getEnv("RABBITMQ_USER", "guest"),
		Password:        getEnv("RABBITMQ_PASSWORD", "guest"),
		Vhost:           getEnv("RABBITMQ_VHOST", "/"),
		Host:            getEnv("RABBITMQ_HOST", "localhost"),
		AmqpPort:        getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:        getEnv("RABBITMQ_EXCHANGE", "tienda.usuarios"),
		ExchangeType:    getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:       getEnv("RABBITMQ_QUEUE_NAME", "tienda.usuarios.eventos"),
	}

	return Config{
		App:   app,
		DB:    db,
		Admin: admin,
		MQ:    mq,
	}
}

// Validate rejects configurations the app must not start with.
// Outside production a missing session secret falls back to a fixed dev value.
func (c *Config) Validate() error {
	if c.App.SessionSecret == "" {
		if c.App.Env == EnvProduction {
			return fmt.Errorf("SESSION_SECRET is required in %s", EnvProduction)
		}
		c.App.SessionSecret = devSessionSecret
	}
	if c.Admin.Email == "" || c.Admin.Password == "" {
		return fmt.Errorf("incomplete admin config")
	}
	if c.Admin.BcryptCost < bcrypt.MinCost || c.Admin.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (c Config) IsProduction() bool { return c.App.Env == EnvProduction }

// DBDSN returns the pgx URL for the application database, or for the
// server's maintenance database when selectDatabase is false.
func (c Config) DBDSN(selectDatabase bool) (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}

	name := c.DB.Name
	if !selectDatabase {
		name = c.DB.MaintenanceDB
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Host:   c.DB.Host + ":" + c.DB.Port,
		Path:   "/" + name,
	}

	return u.String(), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
