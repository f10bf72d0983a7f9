package reports

import "github.com/nutrimilho/estoque-api/internal/application/dto"

// StockReportGenerator renderiza el reporte de stock como documento PDF.
// Recibe un snapshot ya filtrado; no consulta repositorios.
type StockReportGenerator interface {
	GenerateStockReport(data *dto.StockReportData) ([]byte, error)
}

// MovementExporter exporta el historial de movimientos como planilla XLSX.
type MovementExporter interface {
	ExportMovements(data *dto.StockReportData) ([]byte, error)
}
