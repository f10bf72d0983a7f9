package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
)

// captureGenerator guarda el snapshot recibido en vez de renderizar.
type captureGenerator struct {
	data *dto.StockReportData
}

func (g *captureGenerator) GenerateStockReport(data *dto.StockReportData) ([]byte, error) {
	g.data = data
	return []byte("%PDF"), nil
}

func (g *captureGenerator) ExportMovements(data *dto.StockReportData) ([]byte, error) {
	g.data = data
	return []byte("PK"), nil
}

func buildReportUC(t *testing.T, now time.Time) (*reports.ReportUseCase, *captureGenerator) {
	t.Helper()
	store := memory.NewStore()
	store.SeedDemo(now)
	gen := &captureGenerator{}
	uc := reports.NewReportUseCase(store.Groups(), store.Products(), store.Movements(), gen, gen)
	return uc, gen
}

func TestStockReportPDF_SnapshotCompleto(t *testing.T) {
	now := time.Now()
	uc, gen := buildReportUC(t, now)

	out, err := uc.StockReportPDF(now.Add(-72*time.Hour), now.Add(time.Hour), "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.NotNil(t, gen.data)
	assert.Len(t, gen.data.Products, 15)
	assert.Len(t, gen.data.Movements, 3)
	assert.Empty(t, gen.data.GroupName, "sin filtro de grupo")
	assert.True(t, gen.data.TotalEntries.Equal(decimal.NewFromInt(300)))
	assert.True(t, gen.data.TotalExits.Equal(decimal.NewFromInt(5151)))
	assert.Equal(t, 4, gen.data.LowStockCount)

	// Las filas de movimientos salen resueltas a código y nombre de producto.
	assert.Equal(t, "FPC-MST", gen.data.Movements[0].ProductCode)
}

// El período acota los movimientos pero no la lista de productos.
func TestStockReportPDF_PeriodoAcotaMovimientos(t *testing.T) {
	now := time.Now()
	uc, gen := buildReportUC(t, now)

	// Solo entra el movimiento de hace 24h; el de hoy y el de 48h quedan fuera.
	_, err := uc.StockReportPDF(now.Add(-36*time.Hour), now.Add(-12*time.Hour), "")
	require.NoError(t, err)

	require.Len(t, gen.data.Movements, 1)
	assert.Equal(t, "NF-F28", gen.data.Movements[0].ProductCode)
	assert.Len(t, gen.data.Products, 15, "el estado de stock es el vigente, no histórico")
	assert.True(t, gen.data.TotalEntries.Equal(decimal.NewFromInt(100)))
	assert.True(t, gen.data.TotalExits.IsZero())
}

func TestStockReportPDF_FiltroPorGrupo(t *testing.T) {
	now := time.Now()
	uc, gen := buildReportUC(t, now)

	_, err := uc.StockReportPDF(now.Add(-72*time.Hour), now.Add(time.Hour), memory.DemoGroupID("Matéria Prima"))
	require.NoError(t, err)

	assert.Equal(t, "Matéria Prima", gen.data.GroupName)
	require.Len(t, gen.data.Products, 1)
	assert.Equal(t, "MLH-GR", gen.data.Products[0].Code)
	assert.Empty(t, gen.data.Movements, "la matéria prima no tiene movimientos en la fixture")
	assert.True(t, gen.data.TotalStock.Equal(decimal.NewFromInt(1250)))
}

func TestStockReportPDF_Errores(t *testing.T) {
	now := time.Now()
	uc, _ := buildReportUC(t, now)

	_, err := uc.StockReportPDF(now, now.Add(-time.Hour), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "to anterior a from")

	_, err = uc.StockReportPDF(now.Add(-time.Hour), now, "grupo-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementsXLSX_UsaElMismoSnapshot(t *testing.T) {
	now := time.Now()
	uc, gen := buildReportUC(t, now)

	out, err := uc.MovementsXLSX(now.Add(-72*time.Hour), now.Add(time.Hour), "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Len(t, gen.data.Movements, 3)
}
