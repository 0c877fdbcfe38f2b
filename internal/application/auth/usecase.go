package auth

import (
	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionStore
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, sessions repository.SessionStore) *UseCase {
	return &UseCase{users: users, sessions: sessions}
}

// Register crea un usuario con el rol indicado. Devuelve ErrInvalidRole si
// el rol no es admin/customer y ErrUsernameTaken si el username ya existe.
func (uc *UseCase) Register(username, password, roleText string) (*entity.User, error) {
	role, err := entity.ParseRole(roleText)
	if err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	user := &entity.User{
		Username: username,
		Password: password,
		Role:     role,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login busca coincidencia exacta de username y password y, si existe,
// asocia el chat con el usuario en el session store. No crea sesión en
// ningún camino de error.
func (uc *UseCase) Login(chatID int64, username, password string) (*entity.User, error) {
	user, err := uc.users.GetByCredentials(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	uc.sessions.Set(chatID, user)
	return user, nil
}
