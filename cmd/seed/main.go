// Package main provides a tool to seed the works catalog from the command line.
//
// By default it inserts the built-in catalog when the database is empty.
// With --refresh it runs the full Firecrawl ingest path, falling back to the
// built-in catalog when no API key is configured or the fetch fails.
//
// Usage:
//
//	DATA_PATH=~/Memorial/data go run ./cmd/seed
//	DATA_PATH=~/Memorial/data FIRECRAWL_API_KEY=fc-... go run ./cmd/seed --refresh
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/memorialapp/memorial-server/internal/firecrawl"
	"github.com/memorialapp/memorial-server/internal/service"
	"github.com/memorialapp/memorial-server/internal/store"
)

var refresh = flag.Bool("refresh", false, "Fetch works via Firecrawl instead of only seeding")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Memorial/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	client := firecrawl.NewClient(firecrawl.Config{
		APIKey:  os.Getenv("FIRECRAWL_API_KEY"),
		BaseURL: os.Getenv("FIRECRAWL_URL"),
	}, nil)
	defer client.Close()

	query := os.Getenv("FIRECRAWL_QUERY")
	if query == "" {
		query = "Charles Stanley Christian preacher sermons books ministry In Touch"
	}

	works := service.NewWorksService(s, client, query, 10, nil)
	ctx := context.Background()

	if *refresh {
		result, err := works.RefreshFromFirecrawl(ctx)
		if err != nil {
			log.Fatalf("Refresh failed: %v", err)
		}
		fmt.Printf("%s (outcome=%s, ingested=%d)\n", result.Message, result.Outcome, result.Ingested)
	} else {
		seeded, err := works.SeedIfEmpty(ctx)
		if err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		if seeded {
			fmt.Println("Seeded with initial works")
		} else {
			fmt.Println("Catalog already contains works, nothing to do")
		}
	}

	list, err := works.List(ctx, "")
	if err != nil {
		log.Fatalf("Failed to list works: %v", err)
	}

	fmt.Printf("\nCatalog now holds %d works:\n", len(list))
	for _, w := range list {
		fmt.Printf("  [%s] %s\n", w.Category, w.Title)
	}
}
