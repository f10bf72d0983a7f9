package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

// Start hace un refresh inmediato, sin esperar al primer tick.
func TestScheduler_RefreshInmediatoAlArrancar(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := alerts.NewScheduler(ev, time.Hour, log)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return len(ev.Alerts()) == 1
	}, 2*time.Second, 10*time.Millisecond, "el arranque debe recomputar sin esperar al tick")
}

// Trigger fuerza una recomputación fuera del ciclo periódico.
func TestScheduler_TriggerRefresca(t *testing.T) {
	ev, store, _ := buildEvaluator(t)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := alerts.NewScheduler(ev, time.Hour, log)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return len(ev.Alerts()) == 0
	}, 2*time.Second, 10*time.Millisecond)

	seedProduct(t, store, "p1", "HR-MZ", 6, 10)
	s.Trigger()

	require.Eventually(t, func() bool {
		return len(ev.Alerts()) == 1
	}, 2*time.Second, 10*time.Millisecond, "la señal debe provocar el refresh sin esperar una hora")
}

// Trigger nunca bloquea, aunque se encolen señales en ráfaga.
func TestScheduler_TriggerNoBloquea(t *testing.T) {
	ev, _, _ := buildEvaluator(t)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := alerts.NewScheduler(ev, time.Hour, log)
	s.Start(context.Background())
	defer s.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.Trigger()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Trigger bloqueó con señales en ráfaga")
	}
}
