package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReportData snapshot read-only que consume el renderizador de reportes.
// Se arma en el caso de uso de reportes; el generador PDF/XLSX no consulta repos.
type StockReportData struct {
	GeneratedAt time.Time
	From        time.Time
	To          time.Time
	GroupName   string // vacío = todos los grupos

	TotalStock    decimal.Decimal
	TotalEntries  decimal.Decimal
	TotalExits    decimal.Decimal
	LowStockCount int

	Products  []ReportProductRow
	Movements []ReportMovementRow
}

// ReportProductRow fila de producto del reporte.
type ReportProductRow struct {
	Code      string
	Name      string
	GroupName string
	Unit      string
	Stock     decimal.Decimal
	MinStock  *decimal.Decimal
	Status    string // zero | low | ok
}

// ReportMovementRow fila de movimiento del reporte.
type ReportMovementRow struct {
	Date        time.Time
	ProductCode string
	ProductName string
	Type        string
	Quantity    decimal.Decimal
	NewStock    decimal.Decimal
	Company     string
	Notes       string
}
