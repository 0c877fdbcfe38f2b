package repository

import "github.com/Ilya-HxH/TgBot/internal/domain/entity"

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y deja el ID generado en product.ID.
	Create(product *entity.Product) error
	// GetByID devuelve nil sin error si no existe.
	GetByID(id int64) (*entity.Product, error)
	// List devuelve el catálogo completo en orden de inserción (por id).
	List() ([]*entity.Product, error)
}
