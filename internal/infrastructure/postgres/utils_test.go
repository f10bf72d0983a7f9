package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: codeUniqueViolation}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insertar producto: %w", dup)),
		"debe clasificar errores envueltos")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}),
		"otras violaciones de constraint no son código duplicado")
	assert.False(t, isUniqueViolation(errors.New("23505")),
		"el texto del error no alcanza: se clasifica por tipo")
}
