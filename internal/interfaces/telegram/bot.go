package telegram

import (
	"context"
	"strings"

	"github.com/Ilya-HxH/TgBot/internal/application/auth"
	"github.com/Ilya-HxH/TgBot/internal/application/checkout"
	"github.com/Ilya-HxH/TgBot/internal/application/store"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
	"github.com/Ilya-HxH/TgBot/pkg/logger"
)

// Deps dependencias del bot.
type Deps struct {
	Auth     *auth.UseCase
	Store    *store.UseCase
	Checkout *checkout.UseCase
	Sessions repository.SessionStore
	Log      *logger.Logger
}

// handlerFunc maneja un comando ya tokenizado y devuelve el texto de respuesta.
type handlerFunc func(ctx context.Context, chatID int64, args []string) string

// Bot enruta comandos del chat a sus handlers. Es independiente del
// transporte: el Poller (u otro adaptador) le entrega comando y argumentos
// y envía de vuelta el texto que retorna. Ningún handler deja escapar un
// error: todo camino termina en un mensaje para el usuario.
type Bot struct {
	deps     Deps
	handlers map[string]handlerFunc
}

// NewBot registra los comandos soportados.
func NewBot(deps Deps) *Bot {
	b := &Bot{deps: deps}
	b.handlers = map[string]handlerFunc{
		"start":       b.handleStart,
		"register":    b.handleRegister,
		"login":       b.handleLogin,
		"list":        b.handleList,
		"add_product": b.handleAddProduct,
		"add_to_cart": b.handleAddToCart,
		"cart":        b.handleCart,
		"purchase":    b.handlePurchase,
		"history":     b.handleHistory,
	}
	return b
}

// HandleCommand despacha un comando y devuelve la respuesta para el chat.
// args es el texto que sigue al comando, separado por espacios.
func (b *Bot) HandleCommand(ctx context.Context, chatID int64, command, argsText string) string {
	handler, ok := b.handlers[command]
	if !ok {
		return msgUnknownCommand
	}
	return handler(ctx, chatID, strings.Fields(argsText))
}

// session devuelve el usuario autenticado del chat, si existe. El mensaje
// de gate lo arma cada handler.
func (b *Bot) session(chatID int64) (*entity.User, bool) {
	return b.deps.Sessions.Get(chatID)
}
