package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type TelegramConfig struct {
	BotToken      string `mapstructure:"bot_token"`
	Mode          string `mapstructure:"mode"` // "polling" or "webhook"
	WebhookURL    string `mapstructure:"webhook_url"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	PollTimeout   int    `mapstructure:"poll_timeout"`
}

// BotConfig carries the workflow tunables: the bootstrap admin, quota caps,
// attachment cap and pagination sizes. Constructed once at startup and
// injected into every component that needs it.
type BotConfig struct {
	BootstrapAdminID   int64  `mapstructure:"bootstrap_admin_id"`
	MaxAttachments     int    `mapstructure:"max_attachments"`
	MaxUrgentPerDay    int    `mapstructure:"max_urgent_per_day"`
	AdminPageSize      int    `mapstructure:"admin_page_size"`
	UserPageSize       int    `mapstructure:"user_page_size"`
	BroadcastWorkers   int    `mapstructure:"broadcast_workers"`
	SendTimeoutSeconds int    `mapstructure:"send_timeout_seconds"`
	Timezone           string `mapstructure:"timezone"`
}
