package notify

import (
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

var _ alerts.Notifier = (*LogNotifier)(nil)

// LogNotifier fallback cuando no hay token de Telegram configurado:
// la alerta queda solo en el log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyLowStock(productName string, currentStock, minStock decimal.Decimal) error {
	n.log.Warn().
		Str("product", productName).
		Str("current_stock", currentStock.String()).
		Str("min_stock", minStock.String()).
		Msg("estoque baixo")
	return nil
}
