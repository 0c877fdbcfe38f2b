package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ilya-HxH/TgBot/internal/domain"
)

// handleList /list: catálogo completo en orden de inserción. Requiere
// sesión, cualquier rol.
func (b *Bot) handleList(ctx context.Context, chatID int64, args []string) string {
	if _, ok := b.session(chatID); !ok {
		return msgNeedLogin
	}
	products, err := b.deps.Store.ListProducts()
	if err != nil {
		b.deps.Log.Error().Err(err).Str("command", "list").Msg("fallo al listar productos")
		return msgInternalError
	}
	if len(products) == 0 {
		return msgCatalogEmpty
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", p.ID, p.Name, p.Price.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

// handleAddProduct /add_product <nombre> <descripción...> <precio>. Solo
// admin. La descripción son todos los tokens intermedios; el precio es el
// último.
func (b *Bot) handleAddProduct(ctx context.Context, chatID int64, args []string) string {
	user, ok := b.session(chatID)
	if !ok {
		return msgNeedLogin
	}
	if !user.IsAdmin() {
		return msgOnlyAdmin
	}
	if len(args) < 3 {
		return msgAddProductUsage
	}
	name := args[0]
	description := strings.Join(args[1:len(args)-1], " ")
	priceText := args[len(args)-1]
	product, err := b.deps.Store.AddProduct(name, description, priceText)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return msgBadPrice
		}
		b.deps.Log.Error().Err(err).Str("command", "add_product").Msg("fallo al agregar producto")
		return msgInternalError
	}
	return fmt.Sprintf("Producto '%s' agregado con éxito!", product.Name)
}
