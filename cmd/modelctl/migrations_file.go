//go:build !embed_migrations

package main

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/modelbase-go/modelbase/pkg/config"
)

func createMigrateInstance(dbURL string) (*migrate.Migrate, error) {
	path := config.Get().MigrationsDir
	fmt.Printf("Running migrations from file://%s\n", path)
	return migrate.New("file://"+path, dbURL)
}
