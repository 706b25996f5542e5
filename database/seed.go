package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/klypso/agency-backend/auth"
	"github.com/klypso/agency-backend/models"
)

// EnsureAdmin creates the configured admin user if no user with that email
// exists yet. The password is stored bcrypt-hashed.
func (d Database) EnsureAdmin(name, email, password string) error {
	if email == "" || password == "" {
		log.Warn().Msg("admin credentials not configured, skipping admin seed")
		return nil
	}

	existing, err := d.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		IsAdmin:   true,
		CreatedAt: time.Now(),
	}
	if err := d.userRepo.Add(&user); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("seeded admin user")
	return nil
}
