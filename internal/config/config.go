package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	WordNet   WordNetConfig   `yaml:"wordnet"`
	Rules     RulesConfig     `yaml:"rules"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// WikipediaConfig holds MediaWiki API client settings.
type WikipediaConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"WIKIPEDIA_BASE_URL"        env-default:"https://en.wikipedia.org/w/api.php"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"WIKIPEDIA_REQUEST_TIMEOUT" env-default:"10s"`
	RetryAttempts  int           `yaml:"retry_attempts"  env:"WIKIPEDIA_RETRY_ATTEMPTS"  env-default:"10"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"WIKIPEDIA_RETRY_DELAY"     env-default:"2s"`
}

// WordNetConfig holds the location of the WordNet noun database files
// (index.noun, data.noun, noun.exc).
type WordNetConfig struct {
	Dir string `yaml:"dir" env:"WORDNET_DIR" env-required:"true"`
}

// RulesConfig holds the location of the YAML rule file. An empty path means
// the built-in rule tables are used.
type RulesConfig struct {
	Path string `yaml:"path" env:"RULES_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
