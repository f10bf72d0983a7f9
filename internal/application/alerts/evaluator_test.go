package alerts_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeNotifier registra cada despacho y avisa por canal para poder esperar a
// la goroutine de dispatch sin sleeps arbitrarios.
type fakeNotifier struct {
	mu       sync.Mutex
	products []string
	ch       chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{ch: make(chan string, 16)}
}

func (f *fakeNotifier) NotifyLowStock(productName string, _, _ decimal.Decimal) error {
	f.mu.Lock()
	f.products = append(f.products, productName)
	f.mu.Unlock()
	f.ch <- productName
	return nil
}

func (f *fakeNotifier) waitFor(t *testing.T, n int) []string {
	t.Helper()
	got := make([]string, 0, n)
	for len(got) < n {
		select {
		case name := <-f.ch:
			got = append(got, name)
		case <-time.After(2 * time.Second):
			t.Fatalf("esperando %d notificaciones, llegaron %d", n, len(got))
		}
	}
	return got
}

func seedProduct(t *testing.T, store *memory.Store, id, code string, stock, minStock int64) {
	t.Helper()
	min := decimal.NewFromInt(minStock)
	err := store.Products().Create(&entity.Product{
		ID:           id,
		GroupID:      "1",
		Code:         code,
		Name:         "Produto " + code,
		Unit:         "unidade",
		CurrentStock: decimal.NewFromInt(stock),
		MinStock:     &min,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
}

func buildEvaluator(t *testing.T) (*alerts.Evaluator, *memory.Store, *fakeNotifier) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Groups().Create(&entity.ProductGroup{
		ID: "1", Name: "Produtos Ensacados", Color: "#22c55e", CreatedAt: time.Now(),
	}))
	notifier := newFakeNotifier()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return alerts.NewEvaluator(store.Products(), store.Groups(), notifier, log), store, notifier
}

func alertIDs(as []entity.LowStockAlert) []string {
	ids := make([]string, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ID)
	}
	return ids
}

// ──────────────────────────────────────────────────────────────────────────────
// Conjunto derivado
// ──────────────────────────────────────────────────────────────────────────────

// El refresh toma los productos con stock <= mínimo; el umbral es inclusivo.
func TestRefresh_UmbralInclusivo(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)   // por debajo
	seedProduct(t, store, "p2", "GRT-1000", 5, 5) // exactamente en el mínimo
	seedProduct(t, store, "p3", "HR-FRT", 77, 20) // sano

	require.NoError(t, ev.Refresh(context.Background()))

	got := ev.Alerts()
	assert.ElementsMatch(t, []string{"alert-p1", "alert-p2"}, alertIDs(got),
		"stock == mínimo también genera alerta")
}

// Un producto sin mínimo configurado nunca alerta, aunque esté en cero.
func TestRefresh_SinMinimoNoAlerta(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	err := store.Products().Create(&entity.Product{
		ID: "p1", GroupID: "1", Code: "FB-BR", Name: "Fubá Branco",
		Unit: "unidade", CurrentStock: decimal.Zero, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, ev.Refresh(context.Background()))
	assert.Empty(t, ev.Alerts())
}

// El ID de alerta es determinista: refrescar dos veces el mismo estado
// produce el mismo conjunto de IDs.
func TestRefresh_IDsDeterministas(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)

	require.NoError(t, ev.Refresh(context.Background()))
	first := alertIDs(ev.Alerts())
	require.NoError(t, ev.Refresh(context.Background()))
	second := alertIDs(ev.Alerts())

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"alert-p1"}, first)
}

// El grupo borrado se refleja con los fallbacks, no con error.
func TestRefresh_GrupoAusenteUsaFallback(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	min := decimal.NewFromInt(10)
	err := store.Products().Create(&entity.Product{
		ID: "p1", GroupID: "grupo-borrado", Code: "HR-MZ", Name: "Harina Maiz",
		Unit: "unidade", CurrentStock: decimal.NewFromInt(6), MinStock: &min,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, ev.Refresh(context.Background()))
	got := ev.Alerts()
	require.Len(t, got, 1)
	assert.Equal(t, "Sem grupo", got[0].GroupName)
	assert.Equal(t, "#888888", got[0].GroupColor)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado de lectura
// ──────────────────────────────────────────────────────────────────────────────

// IsRead sobrevive los refresh mientras la alerta siga vigente.
func TestRefresh_ArrastraIsRead(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)
	seedProduct(t, store, "p2", "FF-1400", 9, 10)

	require.NoError(t, ev.Refresh(context.Background()))
	ev.MarkAsRead("alert-p1")
	require.Equal(t, 1, ev.UnreadCount())

	require.NoError(t, ev.Refresh(context.Background()))

	assert.Equal(t, 1, ev.UnreadCount(), "alert-p1 debe seguir leída tras el refresh")
	for _, a := range ev.Alerts() {
		if a.ID == "alert-p1" {
			assert.True(t, a.IsRead)
		}
	}
}

// Una alerta que sale del conjunto y vuelve a entrar regresa como no leída.
func TestRefresh_ReapareceComoNoLeida(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)

	require.NoError(t, ev.Refresh(context.Background()))
	ev.MarkAllAsRead()
	require.Zero(t, ev.UnreadCount())

	// El producto se recupera y luego recae.
	require.NoError(t, store.Products().UpdateStock("p1", decimal.NewFromInt(50)))
	require.NoError(t, ev.Refresh(context.Background()))
	require.Empty(t, ev.Alerts())

	require.NoError(t, store.Products().UpdateStock("p1", decimal.NewFromInt(3)))
	require.NoError(t, ev.Refresh(context.Background()))

	got := ev.Alerts()
	require.Len(t, got, 1)
	assert.False(t, got[0].IsRead, "la alerta reaparecida vuelve sin leer")
	assert.Equal(t, 1, ev.UnreadCount())
}

// Marcar una alerta inexistente es un no-op.
func TestMarkAsRead_Inexistente(t *testing.T) {
	ev, store, _ := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)
	require.NoError(t, ev.Refresh(context.Background()))

	ev.MarkAsRead("alert-no-existe")
	assert.Equal(t, 1, ev.UnreadCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho de notificaciones
// ──────────────────────────────────────────────────────────────────────────────

// Solo las alertas nuevas respecto al snapshot anterior se despachan.
func TestRefresh_DespachaSoloNuevas(t *testing.T) {
	ev, store, notifier := buildEvaluator(t)
	seedProduct(t, store, "p1", "HR-MZ", 6, 10)

	require.NoError(t, ev.Refresh(context.Background()))
	got := notifier.waitFor(t, 1)
	assert.Equal(t, []string{"Produto HR-MZ"}, got)

	// Mismo estado: el segundo refresh no debe redespachar.
	require.NoError(t, ev.Refresh(context.Background()))

	// Un producto nuevo que entra en alerta sí se despacha.
	seedProduct(t, store, "p2", "FF-1400", 9, 10)
	require.NoError(t, ev.Refresh(context.Background()))
	got = notifier.waitFor(t, 1)
	assert.Equal(t, []string{"Produto FF-1400"}, got)

	notifier.mu.Lock()
	total := len(notifier.products)
	notifier.mu.Unlock()
	assert.Equal(t, 2, total, "p1 no debe despacharse dos veces")
}
