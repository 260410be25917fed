// Package repository implements the two interchangeable storage backends for
// project records: a normalized PostgreSQL store and a denormalized flat-file
// JSON store. Both expose the same read contract; selection and fallback
// between them is owned by the service layer.
package repository

import (
	"context"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

// ProjectReader is the read contract shared by both backends.
// Implementations return errors as-is; recovery policy (fallback,
// degrade-to-empty) lives in the service layer.
type ProjectReader interface {
	ListProjects(ctx context.Context) ([]domain.ProjectDetail, error)
	GetProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error)
}

// ContactStore persists contact submissions. Only the relational backend
// implements it; the in-memory fallback lives in the service layer.
type ContactStore interface {
	InsertContact(ctx context.Context, sub domain.ContactSubmission) error
	ContactCount(ctx context.Context) (int, error)
}
