package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	defaultHTTPPort       = "8080"
	defaultReportSchedule = "0 */5 * * * *"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	ReportSchedule string
	CORSOrigins    []string
	KafkaBrokers   []string
	KafkaTopic     string
}

// DSN returns the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads configuration in order: .env (if present), environment, flags.
// A missing .env is reported on logger as a warning.
func LoadConfig(args []string, logger *slog.Logger) (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logger.With("component", "config").Warn(".env not loaded", "error", err)
	}

	config := Config{
		HTTPPort:       envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         envOr("DB_USER", "postgres"),
		DBPassword:     envOr("DB_PASSWORD", "postgres"),
		DBName:         envOr("DB_NAME", "dispatch"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		ReportSchedule: envOr("REPORT_SCHEDULE", defaultReportSchedule),
		CORSOrigins:    strings.Split(envOr("CORS_ALLOWED_ORIGINS", "*"), ","),
		KafkaBrokers:   splitList(os.Getenv("KAFKA_HOST")),
		KafkaTopic:     envOr("KAFKA_DELIVERY_ASSIGNED_TOPIC", "delivery.assigned"),
	}

	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	flags.StringVarP(&config.HTTPPort, "port", "p", config.HTTPPort, "port to listen on")
	flags.StringVar(&config.ReportSchedule, "report-schedule", config.ReportSchedule,
		"cron schedule with seconds for the driver rank report")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if port, err := strconv.Atoi(config.HTTPPort); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port: %s", config.HTTPPort)
	}

	return config, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
