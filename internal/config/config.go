package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`

	// Domain settings
	UpcomingWindowDays int           `env:"UPCOMING_WINDOW_DAYS"`
	TrialWindowDays    int           `env:"TRIAL_WINDOW_DAYS"`
	NotifyInterval     time.Duration `env:"NOTIFY_INTERVAL"`
	OwnerUserID        int64         `env:"OWNER_USER_ID"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к sqlite-файлу)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.IntVar(&cfg.UpcomingWindowDays, "upcoming-window", cfg.UpcomingWindowDays, "окно 'скоро платить' в днях")
	flag.IntVar(&cfg.TrialWindowDays, "trial-window", cfg.TrialWindowDays, "окно предупреждения об окончании trial в днях")
	flag.DurationVar(&cfg.NotifyInterval, "notify-interval", cfg.NotifyInterval, "период запуска движка уведомлений")
	flag.Int64Var(&cfg.OwnerUserID, "owner", cfg.OwnerUserID, "id пользователя-владельца, получателя уведомлений")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "finkeeper.db"
	}
	if cfg.UpcomingWindowDays <= 0 {
		cfg.UpcomingWindowDays = 7
	}
	if cfg.TrialWindowDays <= 0 {
		cfg.TrialWindowDays = 3
	}
	if cfg.NotifyInterval <= 0 {
		cfg.NotifyInterval = time.Hour
	}
	if cfg.OwnerUserID <= 0 {
		cfg.OwnerUserID = 1
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
