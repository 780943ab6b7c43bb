package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigin is the single origin granted cross-origin access.
	// The development frontend is the only expected consumer.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required,url"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// Connection pool sizing. Defaults suit a small API behind one process.
	MaxOpenConns           int `mapstructure:"max_open_conns"            validate:"required,gt=0"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"            validate:"required,gt=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"required,gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. Minimum length is enforced so a weak
	// or accidentally empty secret fails at startup rather than at runtime.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token validity window.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
