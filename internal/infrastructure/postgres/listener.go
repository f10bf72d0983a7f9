package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrimilho/estoque-api/pkg/logger"
)

// Canal de NOTIFY disparado por el trigger sobre products (ver migrations).
const productsChannel = "estoque_products_changed"

// Listener escucha LISTEN/NOTIFY de PostgreSQL y reenvía una señal sin payload
// por cada cambio en la tabla de productos. Es la fuente de cambios en tiempo
// real que alimenta el refresh de alertas.
type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewListener construye el listener.
func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{pool: pool, log: log}
}

// Listen bloquea escuchando notificaciones hasta que ctx se cancele.
// Por cada notificación invoca onChange (una señal basta, el payload se ignora).
// Si la conexión dedicada se cae, se vuelve a adquirir tras una pausa corta.
func (l *Listener) Listen(ctx context.Context, onChange func()) {
	for ctx.Err() == nil {
		if err := l.listenOnce(ctx, onChange); err != nil && ctx.Err() == nil {
			l.log.Warn().Err(err).Msg("conexión LISTEN perdida, reintentando")
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (l *Listener) listenOnce(ctx context.Context, onChange func()) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+productsChannel); err != nil {
		return err
	}
	l.log.Info().Str("channel", productsChannel).Msg("escuchando cambios de productos")

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		onChange()
	}
}
