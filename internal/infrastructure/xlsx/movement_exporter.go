// Package xlsx exporta el historial de movimientos como planilla Excel.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
)

var _ reports.MovementExporter = (*MovementExporter)(nil)

// MovementExporter implementa reports.MovementExporter usando excelize.
type MovementExporter struct{}

func NewMovementExporter() *MovementExporter { return &MovementExporter{} }

// ExportMovements genera la planilla con una fila por movimiento y devuelve
// los bytes del archivo XLSX.
func (e *MovementExporter) ExportMovements(data *dto.StockReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"data",
		"codigo",
		"produto",
		"tipo",
		"quantidade",
		"saldo_apos",
		"empresa",
		"observacoes",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	row := 2
	for _, mv := range data.Movements {
		qty, _ := mv.Quantity.Float64()
		saldo, _ := mv.NewStock.Float64()
		excelRow := []interface{}{
			mv.Date.Format("02/01/2006 15:04"),
			mv.ProductCode,
			mv.ProductName,
			mv.Type,
			qty,
			saldo,
			mv.Company,
			mv.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
