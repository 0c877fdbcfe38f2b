package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ilya-HxH/TgBot/internal/domain"
)

// handleAddToCart /add_to_cart <product_id> <cantidad>. Solo customer.
// Cada llamada agrega una fila nueva al carrito, sin fusionar repetidos.
func (b *Bot) handleAddToCart(ctx context.Context, chatID int64, args []string) string {
	user, ok := b.session(chatID)
	if !ok {
		return msgNeedLogin
	}
	if !user.IsCustomer() {
		return msgOnlyCustomer
	}
	if len(args) < 2 {
		return msgAddToCartUsage
	}
	productID, err1 := strconv.ParseInt(args[0], 10, 64)
	quantity, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return msgBadNumbers
	}
	product, err := b.deps.Store.AddToCart(user.ID, productID, quantity)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return msgBadQuantity
	case errors.Is(err, domain.ErrProductNotFound):
		return msgProductNotFound
	case err != nil:
		b.deps.Log.Error().Err(err).Str("command", "add_to_cart").Msg("fallo al agregar al carrito")
		return msgInternalError
	}
	return fmt.Sprintf("Producto '%s' agregado al carrito (%d ud.).", product.Name, quantity)
}

// handleCart /cart: líneas pendientes del carrito con el precio vigente.
func (b *Bot) handleCart(ctx context.Context, chatID int64, args []string) string {
	user, ok := b.session(chatID)
	if !ok {
		return msgNeedLogin
	}
	if !user.IsCustomer() {
		return msgOnlyCustomer
	}
	items, err := b.deps.Store.CartItems(user.ID)
	if err != nil {
		b.deps.Log.Error().Err(err).Str("command", "cart").Msg("fallo al leer el carrito")
		return msgInternalError
	}
	if len(items) == 0 {
		return msgCartEmpty
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "Tu carrito:")
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s x%d - %s",
			item.Product.Name, item.Quantity,
			item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}
