package postgres

import (
	"context"
	"fmt"

	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create agrega una línea al carrito. Una fila por llamada, sin merge.
func (r *CartRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.UserID, item.ProductID, item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByUser devuelve las líneas del usuario con el producto al precio
// vigente. FOR UPDATE OF c: dentro de la transacción de checkout las filas
// del carrito quedan bloqueadas, de modo que un checkout duplicado
// concurrente espera y encuentra el carrito ya vacío.
func (r *CartRepo) ListByUser(userID int64) ([]*entity.CartItem, error) {
	query := `
		SELECT c.id, c.user_id, c.product_id, c.quantity,
		       p.id, p.name, p.description, p.price, p.created_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.id
		FOR UPDATE OF c`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		var p entity.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item.Product = &p
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DeleteByUser vacía el carrito del usuario.
func (r *CartRepo) DeleteByUser(userID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}
	return nil
}
