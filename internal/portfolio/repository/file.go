package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

// FileStore serves projects from a single denormalized JSON document.
// The file is small and re-read per call; nothing is mutated in place.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ListProjects parses the whole document. Slug uniqueness is only a
// convention in the flat file, so it is enforced here at load time.
func (s *FileStore) ListProjects(ctx context.Context) ([]domain.ProjectDetail, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read projects file: %w", err)
	}

	var projects []domain.ProjectDetail
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("parse projects file: %w", err)
	}

	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, p.Slug)
		}
		seen[p.Slug] = struct{}{}
	}

	return projects, nil
}

// GetProjectBySlug is a linear scan over the parsed list. Acceptable for a
// small file; this is not a hot path.
func (s *FileStore) GetProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i], nil
		}
	}

	return nil, domain.ErrProjectNotFound
}
