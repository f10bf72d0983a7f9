package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// KPIs globales del inventario más los últimos movimientos.
type DashboardStatsDTO struct {
	TotalProducts   int                `json:"total_products"`
	TotalGroups     int                `json:"total_groups"`
	TotalStock      decimal.Decimal    `json:"total_stock"`
	TotalEntries    decimal.Decimal    `json:"total_entries"`
	TotalExits      decimal.Decimal    `json:"total_exits"`
	LowStockCount   int                `json:"low_stock_count"` // comparación estricta (<)
	RecentMovements []MovementResponse `json:"recent_movements"`
}

// GroupRollupDTO resumen de un grupo para el dashboard por grupos.
type GroupRollupDTO struct {
	GroupID       string            `json:"group_id"`
	GroupName     string            `json:"group_name"`
	GroupColor    string            `json:"group_color"`
	Products      []ProductResponse `json:"products"`
	TotalStock    decimal.Decimal   `json:"total_stock"`
	LowStockCount int               `json:"low_stock_count"`
	Entries       decimal.Decimal   `json:"entries"`
	Exits         decimal.Decimal   `json:"exits"`
	// ChartData: top-6 productos del grupo por stock, de mayor a menor.
	ChartData []ChartPointDTO `json:"chart_data"`
}

// ChartPointDTO punto del gráfico de barras de un grupo.
type ChartPointDTO struct {
	Name     string          `json:"name"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"` // 0 si el producto no tiene umbral
}
