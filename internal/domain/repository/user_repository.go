package repository

import "github.com/Ilya-HxH/TgBot/internal/domain/entity"

// UserRepository puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y deja el ID generado en user.ID.
	// Devuelve domain.ErrUsernameTaken si el username ya existe.
	Create(user *entity.User) error
	// GetByUsername devuelve nil sin error si no existe.
	GetByUsername(username string) (*entity.User, error)
	// GetByCredentials busca coincidencia exacta de username y password.
	// Devuelve nil sin error si no hay match.
	GetByCredentials(username, password string) (*entity.User, error)
}
