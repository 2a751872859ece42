package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DBConfig for database connection
type DBConfig struct {
	Host, User, Password, DBName, SSLMode string
	Port                                  int
}

// Config holds the recognized options: listen address, database
// connection, JWT signing secret, and the seed credentials for the
// bootstrap admin and test accounts.
type Config struct {
	WebHost   string
	WebPort   int
	JWTSecret string

	AdminEmail    string
	AdminPassword string
	TestEmail     string
	TestPassword  string

	DB DBConfig
}

// Load reads configuration from an optional viper config file with
// defaults, then applies strict PAUTINA_* environment overrides.
func Load() (Config, error) {

	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 8080)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("jwt_secret", "supersecretkey")
	viper.SetDefault("seed.admin_email", "admin@example.com")
	viper.SetDefault("seed.admin_password", "admin123")
	viper.SetDefault("seed.test_email", "user@example.com")
	viper.SetDefault("seed.test_password", "user123")

	_ = viper.ReadInConfig() // ignore missing config file

	c := Config{
		WebHost:   viper.GetString("web.host"),
		WebPort:   viper.GetInt("web.port"),
		JWTSecret: viper.GetString("jwt_secret"),
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		AdminEmail:    viper.GetString("seed.admin_email"),
		AdminPassword: viper.GetString("seed.admin_password"),
		TestEmail:     viper.GetString("seed.test_email"),
		TestPassword:  viper.GetString("seed.test_password"),
	}

	// ---- OVERRIDE WITH ENV VARS (STRICT) ----
	if v := os.Getenv("PAUTINA_DB_HOST"); v != "" {
		c.DB.Host = v
	}
	if v := os.Getenv("PAUTINA_DB_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &c.DB.Port)
	}
	if v := os.Getenv("PAUTINA_DB_USER"); v != "" {
		c.DB.User = v
	}
	if v := os.Getenv("PAUTINA_DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("PAUTINA_DB_NAME"); v != "" {
		c.DB.DBName = v
	}
	if v := os.Getenv("PAUTINA_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("PAUTINA_ADMIN_EMAIL"); v != "" {
		c.AdminEmail = v
	}
	if v := os.Getenv("PAUTINA_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("PAUTINA_TEST_EMAIL"); v != "" {
		c.TestEmail = v
	}
	if v := os.Getenv("PAUTINA_TEST_PASSWORD"); v != "" {
		c.TestPassword = v
	}

	return c, nil
}
