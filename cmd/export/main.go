package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
)

// main dumps the validated catalog seed as JSON, either to stdout or
// to the file given as the first argument. The frontend consumes this
// as its static product data file.
// Usage: go run cmd/export/main.go [out.json]
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODAVE STOREFRONT - Catalog Exporter")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if err := catalog.Init(); err != nil {
		log.Fatalf("Catalog seed failed validation: %v", err)
	}
	store := catalog.Default()
	log.Println("✓ Catalog validated")

	payload := map[string]any{
		"products":   store.GetAll(),
		"categories": store.Categories(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if len(os.Args) > 1 {
		if err := os.WriteFile(os.Args[1], data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", os.Args[1], err)
		}
		fmt.Printf("✅ Catalog written to %s (%d products)\n", os.Args[1], len(store.GetAll()))
		return
	}

	fmt.Println(string(data))
}
