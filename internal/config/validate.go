package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.VerifyEmailTTL <= 0 {
		return fmt.Errorf("auth.verify_email_ttl must be > 0 (got %v)", c.Auth.VerifyEmailTTL)
	}
	if c.Auth.JoinLinkTTL <= 0 {
		return fmt.Errorf("auth.join_link_ttl must be > 0 (got %v)", c.Auth.JoinLinkTTL)
	}

	if c.Chat.LogDir == "" {
		return fmt.Errorf("chat.log_dir must not be empty")
	}

	if c.Sweeper.Interval <= 0 {
		return fmt.Errorf("sweeper.interval must be > 0 (got %v)", c.Sweeper.Interval)
	}
	if c.Sweeper.UnconfirmedGrace <= 0 {
		return fmt.Errorf("sweeper.unconfirmed_grace must be > 0 (got %v)", c.Sweeper.UnconfirmedGrace)
	}

	return nil
}
