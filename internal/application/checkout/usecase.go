package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

// TxRunner agrupa la lectura del carrito, las inserciones de compras y el
// vaciado del carrito en una sola transacción de la base. La implementación
// PostgreSQL ata ambos repos a la misma tx y hace Commit o Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}

// UseCase convierte el carrito de un usuario en compras registradas.
type UseCase struct {
	tx TxRunner
}

// NewUseCase construye el caso de uso de checkout.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// PurchaseCart lee el carrito del usuario (precio vigente, filas
// bloqueadas), crea una Purchase por línea con total = precio × cantidad,
// acumula el total y vacía el carrito. Todo dentro de una transacción: si
// algo falla a mitad de camino no quedan ni compras parciales ni carrito
// vaciado. Devuelve ErrEmptyCart si no hay líneas.
func (uc *UseCase) PurchaseCart(ctx context.Context, userID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	err := uc.tx.Run(ctx, func(
		cartRepo repository.CartRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		items, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}
		for _, item := range items {
			lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			purchase := &entity.Purchase{
				UserID:     userID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				TotalPrice: lineTotal,
			}
			if err := purchaseRepo.Create(purchase); err != nil {
				return err
			}
			total = total.Add(lineTotal)
		}
		return cartRepo.DeleteByUser(userID)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
