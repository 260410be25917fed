// Package service owns backend selection and fallback policy for project
// reads and the contact write path. No other component talks to a storage
// backend directly.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/repository"
)

// Notifier delivers a best-effort notification for a new contact
// submission. Failures are logged and never surfaced to the caller.
type Notifier interface {
	NotifyContact(sub domain.ContactSubmission) error
}

// DataService is the data access façade. When a relational backend is
// configured it is attempted first; on any backend failure the call falls
// back to the flat-file store. Fallback is per-call, never sticky.
type DataService struct {
	primary  repository.ProjectReader // nil when no relational backend is configured
	fallback repository.ProjectReader
	contacts repository.ContactStore // nil when no relational backend is configured
	notifier Notifier

	mu   sync.Mutex
	subs []domain.ContactSubmission

	now   func() time.Time
	newID func() string
}

func NewDataService(primary repository.ProjectReader, fallback repository.ProjectReader, contacts repository.ContactStore, notifier Notifier) *DataService {
	return &DataService{
		primary:  primary,
		fallback: fallback,
		contacts: contacts,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// ListProjects returns all projects in reverse-chronological order. Reads
// always have a safe empty default: any failure of both backends degrades to
// an empty list so the serving path stays available.
func (s *DataService) ListProjects(ctx context.Context) []domain.ProjectDetail {
	if s.primary != nil {
		projects, err := s.primary.ListProjects(ctx)
		if err == nil {
			return projects
		}
		slog.Warn("relational list failed, falling back to flat file", "error", err)
	}

	projects, err := s.fallback.ListProjects(ctx)
	if err != nil {
		slog.Error("flat-file list failed, serving empty project list", "error", err)
		return []domain.ProjectDetail{}
	}
	return projects
}

// GetProjectBySlug resolves one project. A relational not-found is a valid
// result and does not trigger fallback; only backend failures do. All
// failure modes degrade to ErrProjectNotFound.
func (s *DataService) GetProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	if s.primary != nil {
		p, err := s.primary.GetProjectBySlug(ctx, slug)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		slog.Warn("relational lookup failed, falling back to flat file", "slug", slug, "error", err)
	}

	p, err := s.fallback.GetProjectBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrProjectNotFound) {
			slog.Error("flat-file lookup failed, degrading to not found", "slug", slug, "error", err)
		}
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

// SaveContact stores a contact submission. The id and creation time are
// generated here so both backends receive identical fields. When the
// relational insert fails (or none is configured) the submission is kept in
// the process-local list: a degraded fallback that is lost on restart, which
// is logged but not surfaced in the public contract.
func (s *DataService) SaveContact(ctx context.Context, name, email, message string) domain.ContactSubmission {
	sub := domain.ContactSubmission{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	durable := false
	if s.contacts != nil {
		if err := s.contacts.InsertContact(ctx, sub); err != nil {
			slog.Warn("contact insert failed, using in-memory fallback", "id", sub.ID, "error", err)
		} else {
			durable = true
		}
	}

	if !durable {
		s.mu.Lock()
		s.subs = append(s.subs, sub)
		s.mu.Unlock()
		slog.Warn("contact submission stored in memory only", "id", sub.ID, "durable", false)
	}

	s.dispatchNotification(sub)
	return sub
}

// SubmissionCount reports how many submissions the configured store holds.
func (s *DataService) SubmissionCount(ctx context.Context) int {
	if s.contacts != nil {
		count, err := s.contacts.ContactCount(ctx)
		if err == nil {
			return count
		}
		slog.Warn("contact count failed, using in-memory count", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// dispatchNotification fires the notifier without awaiting it. A notifier
// failure or panic must never flip a successful write into a failure.
func (s *DataService) dispatchNotification(sub domain.ContactSubmission) {
	if s.notifier == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("contact notification panicked", "id", sub.ID, "panic", r)
			}
		}()
		if err := s.notifier.NotifyContact(sub); err != nil {
			slog.Warn("contact notification failed", "id", sub.ID, "error", err)
		}
	}()
}
