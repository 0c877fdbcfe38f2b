package repository

import "github.com/Ilya-HxH/TgBot/internal/domain/entity"

// PurchaseRepository puerto de persistencia para Purchase (DIP).
type PurchaseRepository interface {
	// Create registra una compra y deja el ID generado en purchase.ID.
	Create(purchase *entity.Purchase) error
	// ListByUser devuelve las compras del usuario, más recientes primero,
	// con Product poblado.
	ListByUser(userID int64) ([]*entity.Purchase, error)
}
