// Package user identifies the signed-in user. Authentication itself is
// handled by an external session provider; the dashboards only need to
// know who they are acting as.
package user

import "github.com/anumohan208/Confidence/internal/config"

// User is the identity the dashboards act as.
type User struct {
	ID    int
	Name  string
	Email string
}

// FromConfig builds the identity from the loaded configuration.
func FromConfig(cfg config.UserConfig) User {
	return User{ID: cfg.ID, Name: cfg.Name, Email: cfg.Email}
}
