package memory

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/domain/entity"
)

// demoNamespace ancla los UUID deterministas de la fixture.
var demoNamespace = uuid.MustParse("a3c5f2e1-8d4b-4c6a-9f7e-1b2d3c4e5f60")

// DemoGroupID deriva el UUID estable de un grupo de la fixture a partir de su
// nombre. El esquema de PostgreSQL exige claves UUID, así que la fixture usa
// UUID v5 reproducibles: cmd/seed y las pruebas resuelven los mismos registros
// sin compartir estado.
func DemoGroupID(name string) string {
	return uuid.NewSHA1(demoNamespace, []byte("group:"+name)).String()
}

// DemoProductID deriva el UUID estable de un producto a partir de su código.
func DemoProductID(code string) string {
	return uuid.NewSHA1(demoNamespace, []byte("product:"+code)).String()
}

// DemoMovementID deriva el UUID estable del movimiento n (1-indexado, del más
// reciente al más antiguo).
func DemoMovementID(n int) string {
	return uuid.NewSHA1(demoNamespace, []byte("movement:"+strconv.Itoa(n))).String()
}

// DemoFixture devuelve la planilla de ejemplo de la fábrica: tres grupos,
// quince productos y algunos movimientos recientes. La comparten el modo demo
// y cmd/seed.
func DemoFixture(now time.Time) ([]entity.ProductGroup, []entity.Product, []entity.StockMovement) {
	ensacados := DemoGroupID("Produtos Ensacados")
	bags := DemoGroupID("Produtos em Bags")
	materiaPrima := DemoGroupID("Matéria Prima")

	groups := []entity.ProductGroup{
		{ID: ensacados, Name: "Produtos Ensacados", Description: "Produtos em sacos", Color: "#22c55e", CreatedAt: now},
		{ID: bags, Name: "Produtos em Bags", Description: "Produtos em bags/big bags", Color: "#eab308", CreatedAt: now},
		{ID: materiaPrima, Name: "Matéria Prima", Description: "Matérias primas para produção", Color: "#3b82f6", CreatedAt: now},
	}

	products := []entity.Product{
		demoProduct(ensacados, "NF-F28", "N-Form F28", "unidade", 313, 50, now),
		demoProduct(ensacados, "NF-D48", "N-Form D48", "unidade", 0, 20, now),
		demoProduct(ensacados, "NTG-PRO", "Nutrigel Pro", "unidade", 480, 100, now),
		demoProduct(ensacados, "FPC-MST", "Fubá Pre Cozido Master", "unidade", 20685, 5000, now),
		demoProduct(ensacados, "HR-MZ", "Harina Maiz", "unidade", 6, 10, now),
		demoProduct(ensacados, "HR-FRT", "Harina Fortificada", "unidade", 77, 20, now),
		demoProduct(ensacados, "FB-BR", "Fubá Branco", "unidade", 78, 30, now),
		demoProduct(bags, "NF-F28-BG", "N-Form F28 (Bag)", "bag", 203, 50, now),
		demoProduct(bags, "NF-D48-BG", "N-Form D48 (Bag)", "bag", 42, 20, now),
		demoProduct(bags, "GRT-1000", "Grits Nutriflot (1000)", "bag", 6, 5, now),
		demoProduct(bags, "FF-1400", "Farinha Fina (1400)", "bag", 9, 10, now),
		demoProduct(bags, "NTG-800", "Nutrigel Pro (800)", "bag", 30, 15, now),
		demoProduct(bags, "NTG-1000", "Nutrigel Pro (1000)", "bag", 7, 10, now),
		demoProduct(bags, "NTG-1400", "Nutrigel Pro (1400)", "bag", 54, 20, now),
		demoProduct(materiaPrima, "MLH-GR", "Milho em Grão", "ton", 1250, 500, now),
	}

	movements := []entity.StockMovement{
		{
			ID:            DemoMovementID(1),
			ProductID:     DemoProductID("FPC-MST"),
			Type:          entity.MovementTypeSaida,
			Quantity:      decimal.NewFromInt(5151),
			PreviousStock: decimal.NewFromInt(25836),
			NewStock:      decimal.NewFromInt(20685),
			Notes:         "31 avaria",
			CreatedAt:     now,
		},
		{
			ID:            DemoMovementID(2),
			ProductID:     DemoProductID("NF-F28"),
			Type:          entity.MovementTypeEntrada,
			Quantity:      decimal.NewFromInt(100),
			PreviousStock: decimal.NewFromInt(213),
			NewStock:      decimal.NewFromInt(313),
			Company:       "Fornecedor ABC",
			CreatedAt:     now.Add(-24 * time.Hour),
		},
		{
			ID:            DemoMovementID(3),
			ProductID:     DemoProductID("NTG-PRO"),
			Type:          entity.MovementTypeEntrada,
			Quantity:      decimal.NewFromInt(200),
			PreviousStock: decimal.NewFromInt(280),
			NewStock:      decimal.NewFromInt(480),
			Company:       "Distribuidora XYZ",
			CreatedAt:     now.Add(-48 * time.Hour),
		},
	}

	return groups, products, movements
}

// SeedDemo carga la planilla de ejemplo en el store. Reemplaza lo que hubiera.
func (s *Store) SeedDemo(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups, s.products, s.movements = DemoFixture(now)
}

func demoProduct(groupID, code, name, unit string, stock, minStock int64, now time.Time) entity.Product {
	min := decimal.NewFromInt(minStock)
	return entity.Product{
		ID:           DemoProductID(code),
		GroupID:      groupID,
		Code:         code,
		Name:         name,
		Unit:         unit,
		CurrentStock: decimal.NewFromInt(stock),
		MinStock:     &min,
		CreatedAt:    now,
	}
}
