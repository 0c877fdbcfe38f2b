package repository

import "github.com/Ilya-HxH/TgBot/internal/domain/entity"

// SessionStore asocia un chat autenticado con su usuario. Vive en memoria
// del proceso: sin TTL, sin logout, se pierde al reiniciar. Se inyecta en
// los handlers en lugar de usar estado global.
type SessionStore interface {
	Get(chatID int64) (*entity.User, bool)
	Set(chatID int64, user *entity.User)
}
