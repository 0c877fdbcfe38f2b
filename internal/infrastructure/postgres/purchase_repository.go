package postgres

import (
	"context"
	"fmt"

	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create registra una compra. ID y created_at los genera la base; total_price
// ya viene calculado (precio al momento de la compra × cantidad).
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (user_id, product_id, quantity, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		purchase.UserID, purchase.ProductID, purchase.Quantity, purchase.TotalPrice,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListByUser devuelve las compras del usuario, más recientes primero.
func (r *PurchaseRepo) ListByUser(userID int64) ([]*entity.Purchase, error) {
	query := `
		SELECT b.id, b.user_id, b.product_id, b.quantity, b.total_price, b.created_at,
		       p.id, p.name, p.description, p.price, p.created_at
		FROM purchases b
		JOIN products p ON p.id = b.product_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var b entity.Purchase
		var p entity.Product
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.ProductID, &b.Quantity, &b.TotalPrice, &b.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		b.Product = &p
		list = append(list, &b)
	}
	return list, rows.Err()
}
