package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ilya-HxH/TgBot/pkg/logger"
)

// Poller conecta el Bot con la API de Telegram por long polling. Telegram
// entrega los updates de un chat en orden, de a uno, así que los handlers
// no necesitan coordinación extra dentro de un mismo chat.
type Poller struct {
	api *tgbotapi.BotAPI
	bot *Bot
	log *logger.Logger
}

// NewPoller autentica el bot contra la API con el token dado.
func NewPoller(token string, bot *Bot, log *logger.Logger) (*Poller, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("conectar con la API de Telegram: %w", err)
	}
	log.Info().Str("bot", api.Self.UserName).Msg("bot autenticado en Telegram")
	return &Poller{api: api, bot: bot, log: log}, nil
}

// Run consume updates hasta que el contexto se cancele. Solo procesa
// mensajes que son comandos (/start, /list, ...); el resto se ignora.
func (p *Poller) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := p.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			p.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || !msg.IsCommand() {
				continue
			}
			p.log.Debug().
				Int64("chat_id", msg.Chat.ID).
				Str("command", msg.Command()).
				Msg("comando recibido")
			reply := p.bot.HandleCommand(ctx, msg.Chat.ID, msg.Command(), msg.CommandArguments())
			if _, err := p.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
				p.log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("fallo al enviar respuesta")
			}
		}
	}
}
