package memory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
)

// El esquema de PostgreSQL declara claves UUID: todos los IDs de la fixture
// deben ser UUID válidos para que cmd/seed pueda insertarlos.
func TestDemoFixture_IDsSonUUID(t *testing.T) {
	groups, products, movements := memory.DemoFixture(time.Now())

	seen := make(map[string]bool)
	for _, g := range groups {
		_, err := uuid.Parse(g.ID)
		require.NoError(t, err, "grupo %q", g.Name)
		assert.False(t, seen[g.ID], "ID repetido en grupo %q", g.Name)
		seen[g.ID] = true
	}
	for _, p := range products {
		_, err := uuid.Parse(p.ID)
		require.NoError(t, err, "producto %q", p.Code)
		assert.False(t, seen[p.ID], "ID repetido en producto %q", p.Code)
		seen[p.ID] = true
	}
	for _, m := range movements {
		_, err := uuid.Parse(m.ID)
		require.NoError(t, err, "movimiento %q", m.ID)
		assert.False(t, seen[m.ID], "ID repetido en movimiento %q", m.ID)
		seen[m.ID] = true
	}
}

// Las referencias de la fixture resuelven dentro de ella misma: los productos
// apuntan a grupos existentes y los movimientos a productos existentes, igual
// que exigen las foreign keys del esquema.
func TestDemoFixture_ReferenciasConsistentes(t *testing.T) {
	groups, products, movements := memory.DemoFixture(time.Now())

	groupIDs := make(map[string]bool, len(groups))
	for _, g := range groups {
		groupIDs[g.ID] = true
	}
	productIDs := make(map[string]bool, len(products))
	for _, p := range products {
		assert.True(t, groupIDs[p.GroupID], "producto %q apunta a grupo inexistente", p.Code)
		productIDs[p.ID] = true
	}
	for _, m := range movements {
		assert.True(t, productIDs[m.ProductID], "movimiento %q apunta a producto inexistente", m.ID)
	}
}

// Los IDs son deterministas entre ejecuciones: cmd/seed y las pruebas
// resuelven los mismos registros sin compartir estado.
func TestDemoFixture_IDsDeterministas(t *testing.T) {
	g1, p1, m1 := memory.DemoFixture(time.Now())
	g2, p2, m2 := memory.DemoFixture(time.Now().Add(time.Hour))

	assert.Equal(t, g1[0].ID, g2[0].ID)
	assert.Equal(t, p1[3].ID, p2[3].ID)
	assert.Equal(t, m1[0].ID, m2[0].ID)

	assert.Equal(t, memory.DemoProductID("FPC-MST"), p1[3].ID)
	assert.Equal(t, memory.DemoGroupID("Matéria Prima"), g1[2].ID)
	assert.Equal(t, memory.DemoMovementID(1), m1[0].ID)
}
