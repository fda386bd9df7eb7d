package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort   string
	JWTSecret string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs  int
	TokenTTLHours int

	// MailerProvider: emailjs | log | noop
	MailerProvider   string
	EmailJSServiceID string
	EmailJSTemplate  string
	EmailJSPublicKey string
	EmailJSBaseURL   string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", ""),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "leaveportal"),
		MySQLUser: getenv("MYSQL_USER", "leaveportal"),
		MySQLPass: getenv("MYSQL_PASS", "leaveportal"),

		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs:  300,
		TokenTTLHours: 24,

		MailerProvider:   getenv("MAILER_PROVIDER", "log"),
		EmailJSServiceID: getenv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplate:  getenv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey: getenv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSBaseURL:   getenv("EMAILJS_BASE_URL", ""),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TokenTTLHours = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.MailerProvider == "emailjs" &&
		(c.EmailJSServiceID == "" || c.EmailJSTemplate == "" || c.EmailJSPublicKey == "") {
		return errors.New("emailjs mailer needs EMAILJS_SERVICE_ID/TEMPLATE_ID/PUBLIC_KEY")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
