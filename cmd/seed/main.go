// Comando seed: aplica las migraciones y carga la planilla de ejemplo en
// PostgreSQL. Pensado para entornos de desarrollo; falla si los IDs del
// fixture ya existen.
package main

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/postgres"
	"github.com/nutrimilho/estoque-api/pkg/config"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		_ = sqlDB.Close()
		log.Fatal().Err(err).Msg("migraciones")
	}
	_ = sqlDB.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	groupRepo := postgres.NewGroupRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)

	groups, products, movements := memory.DemoFixture(time.Now())

	for i := range groups {
		if err := groupRepo.Create(&groups[i]); err != nil {
			log.Fatal().Err(err).Str("group", groups[i].Name).Msg("insertar grupo")
		}
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatal().Err(err).Str("code", products[i].Code).Msg("insertar producto")
		}
	}
	for i := range movements {
		if err := movRepo.Create(&movements[i]); err != nil {
			log.Fatal().Err(err).Str("movement", movements[i].ID).Msg("insertar movimiento")
		}
	}

	log.Info().
		Int("groups", len(groups)).
		Int("products", len(products)).
		Int("movements", len(movements)).
		Msg("fixture cargada")
}
