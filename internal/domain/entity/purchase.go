package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase una compra registrada en el checkout. Inmutable: TotalPrice
// captura precio × cantidad al momento de comprar, no sigue al producto.
type Purchase struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time

	// Product poblado en las lecturas con join (/history).
	Product *Product
}
