package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

const sampleProjects = `[
  {
    "id": "p-1",
    "slug": "factory-twin",
    "title": "Factory Twin",
    "description": "digital twin of a factory floor",
    "tags": ["3d", "iot"],
    "category": "digital-twin",
    "createdAt": "2025-06-01T00:00:00Z",
    "updatedAt": "2025-06-01T00:00:00Z",
    "role": "Lead",
    "period": "2025",
    "techStack": ["go", "postgres"],
    "links": {"demo": "https://example.com/twin"},
    "kpis": [{"label": "latency", "value": "30ms"}],
    "background": "legacy plant monitoring",
    "responsibilities": ["architecture", "delivery"],
    "technicalSolution": [{"title": "Ingest", "description": "mqtt fan-in"}],
    "challenges": [{"title": "Scale", "description": "10k sensors"}],
    "screenshots": ["/img/twin-1.png"]
  },
  {
    "id": "p-2",
    "slug": "city-dashboard",
    "title": "City Dashboard",
    "description": "visualization of city data",
    "tags": ["charts"],
    "category": "visualization",
    "createdAt": "2025-01-15T00:00:00Z",
    "updatedAt": "2025-01-15T00:00:00Z"
  }
]`

func writeProjectsFile(t *testing.T, body string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return NewFileStore(path)
}

func TestFileStore_ListProjects(t *testing.T) {
	t.Run("parses the full detail shape in file order", func(t *testing.T) {
		store := writeProjectsFile(t, sampleProjects)

		projects, err := store.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 2)

		first := projects[0]
		assert.Equal(t, "factory-twin", first.Slug)
		assert.Equal(t, domain.CategoryDigitalTwin, first.Category)
		assert.Equal(t, []string{"go", "postgres"}, first.TechStack)
		assert.Equal(t, "https://example.com/twin", first.Links.Demo)
		assert.Empty(t, first.Links.GitHub)
		require.Len(t, first.KPIs, 1)
		assert.Equal(t, domain.KPI{Label: "latency", Value: "30ms"}, first.KPIs[0])
		assert.Equal(t, []string{"architecture", "delivery"}, first.Responsibilities)
		require.Len(t, first.Challenges, 1)
		assert.Equal(t, "Scale", first.Challenges[0].Title)

		assert.Equal(t, "city-dashboard", projects[1].Slug)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
		_, err := store.ListProjects(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed document is an error", func(t *testing.T) {
		store := writeProjectsFile(t, `{"not": "a list"}`)
		_, err := store.ListProjects(context.Background())
		assert.Error(t, err)
	})

	t.Run("duplicate slugs are rejected at load", func(t *testing.T) {
		store := writeProjectsFile(t, `[
		  {"id": "a", "slug": "dup", "title": "A", "category": "visualization"},
		  {"id": "b", "slug": "dup", "title": "B", "category": "visualization"}
		]`)

		_, err := store.ListProjects(context.Background())
		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	})
}

func TestFileStore_GetProjectBySlug(t *testing.T) {
	store := writeProjectsFile(t, sampleProjects)

	t.Run("returns the matching project", func(t *testing.T) {
		p, err := store.GetProjectBySlug(context.Background(), "city-dashboard")
		require.NoError(t, err)
		assert.Equal(t, "City Dashboard", p.Title)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := store.GetProjectBySlug(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}
