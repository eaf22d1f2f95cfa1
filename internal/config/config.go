package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Chat     ChatConfig     `yaml:"chat"`
	Sweeper  SweeperConfig  `yaml:"sweeper"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// AuthConfig holds credential and action-token settings.
type AuthConfig struct {
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	VerifyEmailTTL   time.Duration `yaml:"verify_email_ttl"   env:"AUTH_VERIFY_EMAIL_TTL"   env-default:"1h"`
	JoinLinkTTL      time.Duration `yaml:"join_link_ttl"      env:"AUTH_JOIN_LINK_TTL"      env-default:"168h"`
}

// ChatConfig holds conversation log storage settings.
type ChatConfig struct {
	LogDir string `yaml:"log_dir" env:"CHAT_LOG_DIR" env-default:"./data/chats"`
}

// SweeperConfig holds background expiry sweep settings.
type SweeperConfig struct {
	Enabled          bool          `yaml:"enabled"           env:"SWEEPER_ENABLED"           env-default:"true"`
	Interval         time.Duration `yaml:"interval"          env:"SWEEPER_INTERVAL"          env-default:"1h"`
	UnconfirmedGrace time.Duration `yaml:"unconfirmed_grace" env:"SWEEPER_UNCONFIRMED_GRACE" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
