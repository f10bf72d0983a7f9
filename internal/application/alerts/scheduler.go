package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/nutrimilho/estoque-api/pkg/logger"
)

// Scheduler dispara el refresh del evaluador con un tick periódico (respaldo,
// por defecto cada 5 minutos) y con señales de cambio externas (ej. NOTIFY de
// la tabla de productos). Ambos caminos desembocan en el mismo Refresh, que
// es idempotente sobre el mismo snapshot.
type Scheduler struct {
	evaluator *Evaluator
	interval  time.Duration
	log       *logger.Logger

	signals chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewScheduler construye el scheduler.
func NewScheduler(evaluator *Evaluator, interval time.Duration, log *logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		evaluator: evaluator,
		interval:  interval,
		log:       log,
		signals:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

// Start lanza la goroutine del scheduler. Hace un refresh inmediato al arrancar.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
	s.log.Info().Dur("interval", s.interval).Msg("scheduler de alertas iniciado")
}

// Stop detiene el scheduler y espera a que la goroutine termine.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}

// Trigger encola una señal de cambio externa. No bloquea: si ya hay un
// refresh pendiente, la señal se colapsa con él.
func (s *Scheduler) Trigger() {
	select {
	case s.signals <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh(ctx)

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.signals:
			s.refresh(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	if err := s.evaluator.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("refresh de alertas falló")
	}
}
