// Command migrate runs schema operations for the backend and one-off
// conversions of legacy document exports.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"yarnhog/internal/config"
	"yarnhog/internal/database"
	"yarnhog/internal/records"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate/main.go <up|down|legacy> [args]")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	ctx := context.Background()
	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "up":
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
		log.Println("sql migrations applied")
	case "down":
		if flag.NArg() < 2 {
			return fmt.Errorf("usage: go run ./cmd/migrate/main.go down <version>")
		}
		version, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", flag.Arg(1), err)
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := database.RollbackMigration(ctx, db, version); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		log.Printf("rolled back migration %d", version)
	case "legacy":
		if flag.NArg() < 3 {
			return fmt.Errorf("usage: go run ./cmd/migrate/main.go legacy <export.json> <out.json> [assets-dir]")
		}
		assetsDir := ""
		if flag.NArg() >= 4 {
			assetsDir = flag.Arg(3)
		}
		if err := migrateLegacyExport(flag.Arg(1), flag.Arg(2), assetsDir); err != nil {
			return fmt.Errorf("legacy migration failed: %w", err)
		}
	default:
		return usage()
	}

	return nil
}

func openDatabase() (*gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// legacyExport is the shape of a document-store dump: collections keyed
// by document ID.
type legacyExport struct {
	Projects  map[string]map[string]any `json:"projects"`
	Tutorials map[string]map[string]any `json:"tutorials"`
}

// migrateLegacyExport rewrites an exported document dump in place:
// flat project descriptions become a single Overview section, and
// tutorial photo/symbol pairs collapse into one inline image. Storage
// paths are resolved against assetsDir when given.
func migrateLegacyExport(inPath, outPath, assetsDir string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var export legacyExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	var fetch records.FetchFunc
	if assetsDir != "" {
		fetch = func(path string) (string, error) {
			data, err := os.ReadFile(filepath.Join(assetsDir, filepath.Clean(path)))
			if err != nil {
				return "", err
			}
			mime := http.DetectContentType(data)
			return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
		}
	}

	projectsChanged := 0
	for id, doc := range export.Projects {
		migrated, changed := records.MigrateProject(doc)
		if changed {
			export.Projects[id] = migrated
			projectsChanged++
		}
	}

	tutorialsChanged := 0
	for id, doc := range export.Tutorials {
		migrated, changed, err := records.MigrateTutorial(doc, fetch)
		if err != nil {
			return err
		}
		if changed {
			export.Tutorials[id] = migrated
			tutorialsChanged++
		}
	}

	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}

	log.Printf("migrated %d/%d projects and %d/%d tutorials into %s",
		projectsChanged, len(export.Projects), tutorialsChanged, len(export.Tutorials), outPath)
	return nil
}
