// Package metrics define los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsRecorded movimientos registrados con éxito, por tipo (entrada|saida).
	MovementsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estoque",
		Name:      "movements_recorded_total",
		Help:      "Movimientos de stock registrados, por tipo.",
	}, []string{"type"})

	// AlertRefreshes ejecuciones del refresh del evaluador de alertas.
	AlertRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "estoque",
		Name:      "alert_refreshes_total",
		Help:      "Recomputaciones del conjunto de alertas de estoque baixo.",
	})

	// AlertsDispatched alertas nuevas enviadas al despachador de notificaciones.
	AlertsDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "estoque",
		Name:      "alerts_dispatched_total",
		Help:      "Alertas nuevas despachadas a notificaciones (best-effort).",
	})
)
