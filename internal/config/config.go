// config предоставляет структуру конфигурации recommendation-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env          string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP         HTTPConfig      `yaml:"http"`
	DB           DBConfig        `yaml:"db"`
	Timeouts     TimeoutConfig   `yaml:"timeouts"`
	Delivery     DeliveryConfig  `yaml:"delivery"`
	Scheduler    SchedulerConfig `yaml:"scheduler"`
	LimitsConfig LimitsConfig    `yaml:"limits"`
	Content      ContentConfig   `yaml:"content"`
	Settings     SettingsConfig  `yaml:"settings"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"5s"`
}

// DeliveryConfig — параметры окна доставки.
type DeliveryConfig struct {
	// Window — длина окна по умолчанию: запрос без window_end принимает
	// слоты от начала текущего часа до now + Window.
	Window time.Duration `yaml:"window" env:"DELIVERY_WINDOW" env-default:"5m"`
}

// SchedulerConfig — параметры планировщика слотов.
type SchedulerConfig struct {
	// DefaultPriority — приоритет слота при upsert без явного значения.
	DefaultPriority int `yaml:"default_priority" env:"DEFAULT_PRIORITY" env-default:"5"`
	// DefaultInterval — интервал уведомлений, применяемый когда
	// пользовательские настройки недоступны/не заданы.
	DefaultInterval time.Duration `yaml:"default_interval" env:"DEFAULT_NOTIFY_INTERVAL" env-default:"60m"`
}

// LimitsConfig — серверные лимиты на выдачу списков.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// ContentConfig — апстрим контент-сервиса (news/quiz payload).
type ContentConfig struct {
	BaseURL string        `yaml:"base_url" env:"CONTENT_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"CONTENT_TIMEOUT" env-default:"3s"`
}

// SettingsConfig — апстрим сервиса пользовательских настроек.
type SettingsConfig struct {
	BaseURL string        `yaml:"base_url" env:"SETTINGS_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"SETTINGS_TIMEOUT" env-default:"3s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Delivery.Window <= 0 {
		return fmt.Errorf("delivery.window must be > 0")
	}
	if c.Scheduler.DefaultPriority < 1 || c.Scheduler.DefaultPriority > 10 {
		return fmt.Errorf("scheduler.default_priority must be in [1, 10]")
	}
	if c.Scheduler.DefaultInterval < time.Minute {
		return fmt.Errorf("scheduler.default_interval must be at least 1m")
	}
	if c.LimitsConfig.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.LimitsConfig.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.LimitsConfig.Default > c.LimitsConfig.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if c.Content.BaseURL == "" {
		return fmt.Errorf("content.base_url is required")
	}
	if c.Settings.BaseURL == "" {
		return fmt.Errorf("settings.base_url is required")
	}
	return nil
}
