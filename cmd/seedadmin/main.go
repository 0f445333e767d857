// cmd/seedadmin/main.go — legt das Bootstrap-Admin-Konto an bzw. setzt das
// Passwort zurück. Aufruf: go run ./cmd/seedadmin
package main

import (
	"fmt"
	"log"

	"einsatzplan/internal/config"
	"einsatzplan/internal/infra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if err := infra.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("Admin-Konto '%s' angelegt/aktualisiert\n", cfg.AdminUsername)
}
