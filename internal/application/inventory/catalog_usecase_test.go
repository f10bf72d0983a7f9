package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
)

func buildCatalogUC(t *testing.T) (*inventory.CatalogUseCase, *inventory.RegisterMovementUseCase) {
	t.Helper()
	store := memory.NewStore()
	return inventory.NewCatalogUseCase(store, store.Groups(), store.Products(), store.Movements()),
		inventory.NewRegisterMovementUseCase(store, store.Movements())
}

func mustGroup(t *testing.T, uc *inventory.CatalogUseCase, name string) *dto.GroupResponse {
	t.Helper()
	g, err := uc.CreateGroup(dto.CreateGroupRequest{Name: name, Color: "#22c55e"})
	require.NoError(t, err)
	return g
}

func mustProduct(t *testing.T, uc *inventory.CatalogUseCase, groupID, code string, stock int64) *dto.ProductResponse {
	t.Helper()
	p, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID:      groupID,
		Code:         code,
		Name:         "Produto " + code,
		CurrentStock: decimal.NewFromInt(stock),
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Grupos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateGroup_Validacion(t *testing.T) {
	uc, _ := buildCatalogUC(t)

	_, err := uc.CreateGroup(dto.CreateGroupRequest{Name: "", Color: "#fff"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío debe rechazarse")

	_, err = uc.CreateGroup(dto.CreateGroupRequest{Name: "Bags", Color: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "color vacío debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// El código de producto es único con comparación case-insensitive.
func TestCreateProduct_CodigoDuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")
	mustProduct(t, uc, g.ID, "NF-F28", 100)

	_, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: g.ID,
		Code:    "nf-f28",
		Name:    "Duplicado",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode,
		"nf-f28 debe chocar con NF-F28")
}

func TestCreateProduct_GrupoInexistente(t *testing.T) {
	uc, _ := buildCatalogUC(t)

	_, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: "no-existe",
		Code:    "X-1",
		Name:    "Sin grupo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_UnidadPorDefecto(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")

	p, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: g.ID,
		Code:    "FB-BR",
		Name:    "Fubá Branco",
	})
	require.NoError(t, err)
	assert.Equal(t, "unidade", p.Unit)
}

// El status del producto refleja la clasificación zero/low/ok.
func TestProductResponse_Status(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")

	min := decimal.NewFromInt(20)
	zero, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: g.ID, Code: "NF-D48", Name: "N-Form D48", MinStock: &min,
	})
	require.NoError(t, err)
	assert.Equal(t, "zero", zero.Status)

	low, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: g.ID, Code: "HR-MZ", Name: "Harina Maiz",
		CurrentStock: decimal.NewFromInt(6), MinStock: &min,
	})
	require.NoError(t, err)
	assert.Equal(t, "low", low.Status)

	ok, err := uc.CreateProduct(dto.CreateProductRequest{
		GroupID: g.ID, Code: "HR-FRT", Name: "Harina Fortificada",
		CurrentStock: decimal.NewFromInt(77), MinStock: &min,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", ok.Status)
}

func TestUpdateProduct_Parcial(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")
	p := mustProduct(t, uc, g.ID, "NTG-PRO", 480)

	nuevoNombre := "Nutrigel Pro Plus"
	out, err := uc.UpdateProduct(p.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, out.Name)
	assert.Equal(t, "NTG-PRO", out.Code, "los campos no enviados no deben cambiar")
	assert.True(t, out.CurrentStock.Equal(decimal.NewFromInt(480)))
}

func TestUpdateProduct_CodigoDuplicadoConOtro(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")
	mustProduct(t, uc, g.ID, "NF-F28", 100)
	p := mustProduct(t, uc, g.ID, "NF-D48", 50)

	dup := "NF-F28"
	_, err := uc.UpdateProduct(p.ID, dto.UpdateProductRequest{Code: &dup})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	// Reenviar el propio código no es conflicto.
	propio := "NF-D48"
	_, err = uc.UpdateProduct(p.ID, dto.UpdateProductRequest{Code: &propio})
	assert.NoError(t, err)
}

// Sobrescribir CurrentStock en la edición es el escape para corregir
// digitación; no genera asiento de movimiento.
func TestUpdateProduct_SobrescribeStockSinAsiento(t *testing.T) {
	uc, movUC := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")
	p := mustProduct(t, uc, g.ID, "NF-F28", 100)

	corregido := decimal.NewFromInt(95)
	out, err := uc.UpdateProduct(p.ID, dto.UpdateProductRequest{CurrentStock: &corregido})
	require.NoError(t, err)
	assert.True(t, out.CurrentStock.Equal(corregido))

	list, err := movUC.ListMovements(repository.MovementFilter{ProductID: p.ID})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascadas de borrado
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un producto arrastra todo su historial de movimientos.
func TestDeleteProduct_CascadaMovimientos(t *testing.T) {
	uc, movUC := buildCatalogUC(t)
	g := mustGroup(t, uc, "Produtos Ensacados")
	p := mustProduct(t, uc, g.ID, "NF-F28", 100)

	_, err := movUC.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: p.ID, Type: "entrada", Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(context.Background(), p.ID))

	_, err = uc.GetProduct(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := movUC.ListMovements(repository.MovementFilter{ProductID: p.ID})
	require.NoError(t, err)
	assert.Zero(t, list.Total, "no deben quedar movimientos huérfanos")
}

// Borrar un grupo arrastra sus productos y los movimientos de esos productos,
// sin tocar los demás grupos.
func TestDeleteGroup_CascadaCompleta(t *testing.T) {
	uc, movUC := buildCatalogUC(t)
	ensacados := mustGroup(t, uc, "Produtos Ensacados")
	bags := mustGroup(t, uc, "Produtos em Bags")
	p1 := mustProduct(t, uc, ensacados.ID, "NF-F28", 100)
	p2 := mustProduct(t, uc, bags.ID, "NF-F28-BG", 203)

	_, err := movUC.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: p1.ID, Type: "saida", Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	_, err = movUC.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: p2.ID, Type: "entrada", Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteGroup(context.Background(), ensacados.ID))

	productos, err := uc.ListProducts("")
	require.NoError(t, err)
	require.Equal(t, 1, productos.Total, "solo debe sobrevivir el producto del otro grupo")
	assert.Equal(t, "NF-F28-BG", productos.Items[0].Code)

	movimientos, err := movUC.ListMovements(repository.MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, movimientos.Total)
	assert.Equal(t, p2.ID, movimientos.Items[0].ProductID)
}

func TestDeleteGroup_Inexistente(t *testing.T) {
	uc, _ := buildCatalogUC(t)
	err := uc.DeleteGroup(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
