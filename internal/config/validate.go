package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Wikipedia.BaseURL == "" {
		return fmt.Errorf("wikipedia.base_url must not be empty")
	}
	if c.Wikipedia.RequestTimeout <= 0 {
		return fmt.Errorf("wikipedia.request_timeout must be > 0 (got %v)", c.Wikipedia.RequestTimeout)
	}
	if c.Wikipedia.RetryAttempts < 1 {
		return fmt.Errorf("wikipedia.retry_attempts must be >= 1 (got %d)", c.Wikipedia.RetryAttempts)
	}
	if c.Wikipedia.RetryDelay <= 0 {
		return fmt.Errorf("wikipedia.retry_delay must be > 0 (got %v)", c.Wikipedia.RetryDelay)
	}

	if c.WordNet.Dir == "" {
		return fmt.Errorf("wordnet.dir must not be empty")
	}

	return nil
}
