package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ilya-HxH/TgBot/internal/domain"
)

// handleStart responde el saludo inicial. No requiere sesión.
func (b *Bot) handleStart(ctx context.Context, chatID int64, args []string) string {
	return msgWelcome
}

// handleRegister /register <username> <password> <rol>.
func (b *Bot) handleRegister(ctx context.Context, chatID int64, args []string) string {
	if len(args) < 3 {
		return msgRegisterUsage
	}
	username, password, roleText := args[0], args[1], args[2]
	user, err := b.deps.Auth.Register(username, password, roleText)
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		return msgInvalidRole
	case errors.Is(err, domain.ErrUsernameTaken):
		return msgUsernameTaken
	case err != nil:
		b.deps.Log.Error().Err(err).Str("command", "register").Msg("fallo de registro")
		return msgInternalError
	}
	return fmt.Sprintf("Registro exitoso! Tu login: %s", user.Username)
}

// handleLogin /login <username> <password>. En éxito la sesión queda
// asociada al chat hasta que el proceso se reinicie.
func (b *Bot) handleLogin(ctx context.Context, chatID int64, args []string) string {
	if len(args) < 2 {
		return msgLoginUsage
	}
	username, password := args[0], args[1]
	user, err := b.deps.Auth.Login(chatID, username, password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return msgBadCredentials
	case err != nil:
		b.deps.Log.Error().Err(err).Str("command", "login").Msg("fallo de login")
		return msgInternalError
	}
	return fmt.Sprintf("Bienvenido, %s! Has iniciado sesión como %s.", user.Username, user.Role)
}
