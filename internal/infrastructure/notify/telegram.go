// Package notify implementa los despachadores de alertas de estoque baixo.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/pkg/format"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

var _ alerts.Notifier = (*TelegramNotifier)(nil)

// TelegramNotifier envía la alerta al chat del equipo de almacén.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logger.Logger
}

// NewTelegramNotifier valida el token contra la API de Telegram.
func NewTelegramNotifier(token string, chatID int64, log *logger.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	log.Info().Str("bot", bot.Self.UserName).Msg("notificador telegram conectado")
	return &TelegramNotifier{bot: bot, chatID: chatID, log: log}, nil
}

// NotifyLowStock publica el aviso en pt-BR, el idioma del equipo.
func (n *TelegramNotifier) NotifyLowStock(productName string, currentStock, minStock decimal.Decimal) error {
	text := fmt.Sprintf(
		"⚠️ Estoque Baixo\n%s está com %s unidades (mínimo: %s)",
		productName,
		format.Quantity(currentStock),
		format.Quantity(minStock),
	)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
