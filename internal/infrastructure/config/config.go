package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	sharedConfig "deskbot/internal/shared/config"
)

// ErrFirstRun indicates that no config file existed and a template was written.
// The operator is expected to fill in the bot token before restarting.
var ErrFirstRun = errors.New("config file created, edit it and restart")

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Telegram sharedConfig.TelegramConfig `mapstructure:"telegram"`
	Bot      sharedConfig.BotConfig      `mapstructure:"bot"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	// Load single config file
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	// Set environment variable prefix and replacer
	viper.SetEnvPrefix("DESKBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if scaffoldErr := writeTemplate("./configs"); scaffoldErr != nil {
				return nil, fmt.Errorf("failed to scaffold config file: %w", scaffoldErr)
			}
			return nil, ErrFirstRun
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// writeTemplate writes a commented starter config so a fresh deployment has
// something concrete to edit instead of guessing at keys.
func writeTemplate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config template already exists at %s", path)
	}
	var check map[string]any
	if err := yaml.Unmarshal([]byte(configTemplate), &check); err != nil {
		return fmt.Errorf("config template is not valid yaml: %w", err)
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `# deskbot configuration
# Values may be overridden via environment variables with the DESKBOT_ prefix,
# e.g. DESKBOT_TELEGRAM_BOT_TOKEN overrides telegram.bot_token.

server:
  host: 0.0.0.0
  port: 8080
  mode: release

database:
  # driver: sqlite or mysql
  driver: sqlite
  path: deskbot.db
  # mysql settings (ignored for sqlite)
  host: localhost
  port: 3306
  username: deskbot
  password: ""
  database: deskbot

logger:
  level: info
  format: console
  output_path: stdout

redis:
  enabled: false
  host: localhost
  port: 6379
  password: ""
  db: 0

telegram:
  # Obtain a token from @BotFather and paste it here.
  bot_token: ""
  # mode: polling or webhook
  mode: polling
  webhook_url: ""
  webhook_secret: ""
  poll_timeout: 30

bot:
  # Telegram user ID granted admin rights on first start.
  bootstrap_admin_id: 0
  max_attachments: 5
  max_urgent_per_day: 3
  admin_page_size: 10
  user_page_size: 5
  broadcast_workers: 4
  send_timeout_seconds: 10
  timezone: UTC
`

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "deskbot.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "deskbot")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "deskbot")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Telegram defaults
	viper.SetDefault("telegram.mode", "polling")
	viper.SetDefault("telegram.poll_timeout", 30)

	// Bot defaults
	viper.SetDefault("bot.bootstrap_admin_id", 0)
	viper.SetDefault("bot.max_attachments", 5)
	viper.SetDefault("bot.max_urgent_per_day", 3)
	viper.SetDefault("bot.admin_page_size", 10)
	viper.SetDefault("bot.user_page_size", 5)
	viper.SetDefault("bot.broadcast_workers", 4)
	viper.SetDefault("bot.send_timeout_seconds", 10)
	viper.SetDefault("bot.timezone", "UTC")
}
