package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ilya-HxH/TgBot/internal/domain"
)

// handlePurchase /purchase: convierte el carrito en compras y lo vacía,
// todo en una transacción. Solo customer. Un segundo /purchase inmediato
// encuentra el carrito vacío.
func (b *Bot) handlePurchase(ctx context.Context, chatID int64, args []string) string {
	user, ok := b.session(chatID)
	if !ok {
		return msgNeedLogin
	}
	if !user.IsCustomer() {
		return msgOnlyCustomer
	}
	total, err := b.deps.Checkout.PurchaseCart(ctx, user.ID)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return msgCartEmpty
	case err != nil:
		b.deps.Log.Error().Err(err).Str("command", "purchase").Msg("fallo en el checkout")
		return msgInternalError
	}
	return fmt.Sprintf("Compra realizada por un total de %s.", total.StringFixed(2))
}

// handleHistory /history: compras pasadas, más recientes primero.
func (b *Bot) handleHistory(ctx context.Context, chatID int64, args []string) string {
	user, ok := b.session(chatID)
	if !ok {
		return msgNeedLogin
	}
	if !user.IsCustomer() {
		return msgOnlyCustomer
	}
	purchases, err := b.deps.Store.Purchases(user.ID)
	if err != nil {
		b.deps.Log.Error().Err(err).Str("command", "history").Msg("fallo al leer el historial")
		return msgInternalError
	}
	if len(purchases) == 0 {
		return msgNoPurchases
	}
	lines := make([]string, 0, len(purchases)+1)
	lines = append(lines, "Tus compras:")
	for _, p := range purchases {
		lines = append(lines, fmt.Sprintf("%s x%d - %s (%s)",
			p.Product.Name, p.Quantity, p.TotalPrice.StringFixed(2),
			p.CreatedAt.Format("2006-01-02 15:04")))
	}
	return strings.Join(lines, "\n")
}
