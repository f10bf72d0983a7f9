// Package reports arma los snapshots read-only que consumen los
// renderizadores de reportes (PDF y XLSX).
package reports

import (
	"time"

	"github.com/nutrimilho/estoque-api/internal/application/analytics"
	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	domaininv "github.com/nutrimilho/estoque-api/internal/domain/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

// ReportUseCase genera reportes de stock por período, opcionalmente acotados
// a un grupo.
type ReportUseCase struct {
	groupRepo   repository.GroupRepository
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	pdf         StockReportGenerator
	xlsx        MovementExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	groupRepo repository.GroupRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	pdf StockReportGenerator,
	xlsx MovementExporter,
) *ReportUseCase {
	return &ReportUseCase{
		groupRepo:   groupRepo,
		productRepo: productRepo,
		movRepo:     movRepo,
		pdf:         pdf,
		xlsx:        xlsx,
	}
}

// StockReportPDF genera el PDF del reporte de stock del período.
// groupID vacío = todos los grupos.
func (uc *ReportUseCase) StockReportPDF(from, to time.Time, groupID string) ([]byte, error) {
	data, err := uc.buildData(from, to, groupID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(data)
}

// MovementsXLSX exporta el historial de movimientos del período como XLSX.
func (uc *ReportUseCase) MovementsXLSX(from, to time.Time, groupID string) ([]byte, error) {
	data, err := uc.buildData(from, to, groupID)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.ExportMovements(data)
}

func (uc *ReportUseCase) buildData(from, to time.Time, groupID string) (*dto.StockReportData, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	groupName := ""
	var products []*entity.Product
	var err error
	if groupID == "" {
		products, err = uc.productRepo.List()
	} else {
		group, gerr := uc.groupRepo.GetByID(groupID)
		if gerr != nil {
			return nil, gerr
		}
		if group == nil {
			return nil, domain.ErrNotFound
		}
		groupName = group.Name
		products, err = uc.productRepo.ListByGroup(groupID)
	}
	if err != nil {
		return nil, err
	}

	groups, err := uc.groupRepo.List()
	if err != nil {
		return nil, err
	}
	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}

	movements, err := uc.movRepo.List(repository.MovementFilter{
		GroupID: groupID,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		return nil, err
	}

	productsByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	productRows := make([]dto.ReportProductRow, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, dto.ReportProductRow{
			Code:      p.Code,
			Name:      p.Name,
			GroupName: groupNames[p.GroupID],
			Unit:      p.Unit,
			Stock:     p.CurrentStock,
			MinStock:  p.MinStock,
			Status:    string(domaininv.Classify(p)),
		})
	}

	movementRows := make([]dto.ReportMovementRow, 0, len(movements))
	for _, m := range movements {
		row := dto.ReportMovementRow{
			Date:     m.CreatedAt,
			Type:     m.Type,
			Quantity: m.Quantity,
			NewStock: m.NewStock,
			Company:  m.Company,
			Notes:    m.Notes,
		}
		if p, ok := productsByID[m.ProductID]; ok {
			row.ProductCode = p.Code
			row.ProductName = p.Name
		}
		movementRows = append(movementRows, row)
	}

	return &dto.StockReportData{
		GeneratedAt:   time.Now(),
		From:          from,
		To:            to,
		GroupName:     groupName,
		TotalStock:    analytics.TotalStock(products),
		TotalEntries:  analytics.SumQuantity(movements, entity.MovementTypeEntrada),
		TotalExits:    analytics.SumQuantity(movements, entity.MovementTypeSaida),
		LowStockCount: analytics.LowStockCount(products),
		Products:      productRows,
		Movements:     movementRows,
	}, nil
}
