// Command migrate seeds the relational backend from the flat-file project
// document: it applies the schema, then upserts every project and its child
// rows. Safe to re-run; existing projects are updated in place.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/portfolio-site/go-portfolio-backend/config"
	"github.com/portfolio-site/go-portfolio-backend/internal/bootstrap"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/repository"
)

func main() {
	schemaPath := flag.String("schema", "database/schema.sql", "path to the schema DDL (empty to skip)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.DatabaseConfigured() {
		log.Fatal("DB_HOST is not set; nothing to migrate to")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.DSN(), MaxConns: 5})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if *schemaPath != "" {
		ddl, err := os.ReadFile(*schemaPath)
		if err != nil {
			log.Fatalf("read schema: %v", err)
		}
		if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
			log.Fatalf("apply schema: %v", err)
		}
		log.Printf("schema applied from %s", *schemaPath)
	}

	fileStore := repository.NewFileStore(cfg.Content.ProjectsFile)
	projects, err := fileStore.ListProjects(ctx)
	if err != nil {
		log.Fatalf("load projects: %v", err)
	}
	log.Printf("found %d projects in %s", len(projects), cfg.Content.ProjectsFile)

	store := repository.NewPostgresStore(db)
	for _, p := range projects {
		if err := store.UpsertProject(ctx, p); err != nil {
			log.Fatalf("migrate project %q: %v", p.Slug, err)
		}
		log.Printf("migrated %q", p.Slug)
	}

	migrated, err := store.ListProjects(ctx)
	if err != nil {
		log.Fatalf("verify migration: %v", err)
	}
	log.Printf("done: %d projects in database", len(migrated))
}
