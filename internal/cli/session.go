package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"kasir/internal/services"
)

// sessionFile holds the operator's session token between invocations, next
// to the executable like the database file.
const sessionFile = ".kasir-session"

func saveSession(token string) error {
	if err := os.WriteFile(sessionFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func loadSession() (string, error) {
	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return "", errors.New("not logged in, run `kasir login` first")
	}
	return strings.TrimSpace(string(data)), nil
}

// requireAdmin gates destructive commands behind a valid admin session.
func requireAdmin(auth *services.AuthService) error {
	token, err := loadSession()
	if err != nil {
		return err
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("session expired or invalid, log in again: %w", err)
	}

	if isAdmin, _ := claims["is_admin"].(bool); !isAdmin {
		return errors.New("this command requires an administrator session")
	}
	return nil
}
