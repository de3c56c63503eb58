package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Tracker.MaxApplicationsPerUser <= 0 {
		return fmt.Errorf("tracker.max_applications_per_user must be > 0 (got %d)", c.Tracker.MaxApplicationsPerUser)
	}

	if c.Tracker.ResponseTimeMaxDays <= 0 {
		return fmt.Errorf("tracker.response_time_max_days must be > 0 (got %d)", c.Tracker.ResponseTimeMaxDays)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}

	return nil
}
