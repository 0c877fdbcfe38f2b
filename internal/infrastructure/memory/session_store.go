package memory

import (
	"sync"

	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore mapa en memoria chat -> usuario autenticado. Vida del
// proceso: un reinicio desloguea a todos. El mutex cubre chats
// concurrentes; dentro de un mismo chat el transporte entrega de a un
// comando a la vez.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.User
}

// NewSessionStore construye el store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*entity.User)}
}

// Get devuelve el usuario de la sesión del chat, si existe.
func (s *SessionStore) Get(chatID int64) (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[chatID]
	return user, ok
}

// Set registra (o reemplaza) la sesión del chat.
func (s *SessionStore) Set(chatID int64, user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = user
}
