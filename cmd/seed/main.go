// Comando seed: reescribe el almacén local con los datos de demostración.
// A diferencia del sembrado automático del arranque, este comando reemplaza
// lo que hubiera. Uso: go run ./cmd/seed [-store remitos.db]
package main

import (
	"context"
	"flag"
	"time"

	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
	"github.com/obrasur/remitos-api/internal/infrastructure/localstore"
	"github.com/obrasur/remitos-api/pkg/logger"
)

func main() {
	storePath := flag.String("store", "remitos.db", "ruta del archivo de almacenamiento")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	kv, err := kvstore.OpenSQLite(*storePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *storePath).Msg("abrir almacén local")
	}
	defer kv.Close()

	seeder := localstore.NewSeeder(
		localstore.NewUserRepository(kv),
		localstore.NewWorkRepository(kv),
		localstore.NewRemitoRepository(kv),
		time.Now,
	)
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demo")
	}
	log.Info().Str("path", *storePath).Msg("datos de demostración sembrados")
}
