package alerts

import "github.com/shopspring/decimal"

// Notifier despachador externo de notificaciones de estoque baixo.
// La entrega es best-effort: un error se registra y se descarta, nunca
// falla ni bloquea el refresh del evaluador.
type Notifier interface {
	NotifyLowStock(productName string, currentStock, minStock decimal.Decimal) error
}
