package repository

import "github.com/Ilya-HxH/TgBot/internal/domain/entity"

// CartRepository puerto de persistencia para CartItem (DIP).
type CartRepository interface {
	// Create agrega una línea al carrito (una fila por llamada, sin merge).
	Create(item *entity.CartItem) error
	// ListByUser devuelve las líneas del usuario con Product poblado al
	// precio vigente. Lectura siempre fresca: el carrito no se cachea.
	ListByUser(userID int64) ([]*entity.CartItem, error)
	// DeleteByUser vacía el carrito del usuario.
	DeleteByUser(userID int64) error
}
