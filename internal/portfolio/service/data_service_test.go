package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

// stubReader scripts one reader backend. Errors are consumed per call so a
// backend can fail once and recover.
type stubReader struct {
	projects []domain.ProjectDetail
	errs     []error
	calls    int
}

func (r *stubReader) nextErr() error {
	if len(r.errs) == 0 {
		return nil
	}
	err := r.errs[0]
	r.errs = r.errs[1:]
	return err
}

func (r *stubReader) ListProjects(ctx context.Context) ([]domain.ProjectDetail, error) {
	r.calls++
	if err := r.nextErr(); err != nil {
		return nil, err
	}
	return r.projects, nil
}

func (r *stubReader) GetProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	r.calls++
	if err := r.nextErr(); err != nil {
		return nil, err
	}
	for i := range r.projects {
		if r.projects[i].Slug == slug {
			return &r.projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

type stubContacts struct {
	insertErr error
	countErr  error
	count     int
	inserted  []domain.ContactSubmission
}

func (c *stubContacts) InsertContact(ctx context.Context, sub domain.ContactSubmission) error {
	if c.insertErr != nil {
		return c.insertErr
	}
	c.inserted = append(c.inserted, sub)
	return nil
}

func (c *stubContacts) ContactCount(ctx context.Context) (int, error) {
	if c.countErr != nil {
		return 0, c.countErr
	}
	return c.count, nil
}

type stubNotifier struct {
	done  chan domain.ContactSubmission
	err   error
	panic bool
}

func (n *stubNotifier) NotifyContact(sub domain.ContactSubmission) error {
	if n.done != nil {
		defer func() { n.done <- sub }()
	}
	if n.panic {
		panic("smtp gone")
	}
	return n.err
}

func detail(slug string) domain.ProjectDetail {
	return domain.ProjectDetail{Project: domain.Project{ID: "id-" + slug, Slug: slug, Title: slug}}
}

func TestDataService_ListProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers the relational backend", func(t *testing.T) {
		primary := &stubReader{projects: []domain.ProjectDetail{detail("db")}}
		fallback := &stubReader{projects: []domain.ProjectDetail{detail("file")}}
		svc := NewDataService(primary, fallback, nil, nil)

		got := svc.ListProjects(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "db", got[0].Slug)
		assert.Zero(t, fallback.calls)
	})

	t.Run("serves the flat file when no relational backend is configured", func(t *testing.T) {
		fallback := &stubReader{projects: []domain.ProjectDetail{detail("file")}}
		svc := NewDataService(nil, fallback, nil, nil)

		got := svc.ListProjects(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "file", got[0].Slug)
	})

	t.Run("fallback is per call, not sticky", func(t *testing.T) {
		primary := &stubReader{
			projects: []domain.ProjectDetail{detail("db")},
			errs:     []error{errors.New("connection refused")},
		}
		fallback := &stubReader{projects: []domain.ProjectDetail{detail("file")}}
		svc := NewDataService(primary, fallback, nil, nil)

		got := svc.ListProjects(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "file", got[0].Slug)

		// the backend recovered; the next call must reach it again
		got = svc.ListProjects(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "db", got[0].Slug)
		assert.Equal(t, 2, primary.calls)
	})

	t.Run("degrades to an empty list when both backends fail", func(t *testing.T) {
		primary := &stubReader{errs: []error{errors.New("db down")}}
		fallback := &stubReader{errs: []error{errors.New("file gone")}}
		svc := NewDataService(primary, fallback, nil, nil)

		got := svc.ListProjects(ctx)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDataService_GetProjectBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("relational not-found does not consult the fallback", func(t *testing.T) {
		primary := &stubReader{projects: []domain.ProjectDetail{detail("only-in-db")}}
		fallback := &stubReader{projects: []domain.ProjectDetail{detail("only-in-file")}}
		svc := NewDataService(primary, fallback, nil, nil)

		_, err := svc.GetProjectBySlug(ctx, "only-in-file")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		assert.Zero(t, fallback.calls)
	})

	t.Run("backend failure falls back to the flat file", func(t *testing.T) {
		primary := &stubReader{errs: []error{errors.New("db down")}}
		fallback := &stubReader{projects: []domain.ProjectDetail{detail("shared")}}
		svc := NewDataService(primary, fallback, nil, nil)

		p, err := svc.GetProjectBySlug(ctx, "shared")
		require.NoError(t, err)
		assert.Equal(t, "shared", p.Slug)
	})

	t.Run("flat-file failure degrades to not found", func(t *testing.T) {
		fallback := &stubReader{errs: []error{errors.New("file gone")}}
		svc := NewDataService(nil, fallback, nil, nil)

		_, err := svc.GetProjectBySlug(ctx, "anything")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestDataService_SaveContact(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	newSvc := func(contacts *stubContacts, notifier Notifier) *DataService {
		svc := NewDataService(nil, &stubReader{}, nil, notifier)
		if contacts != nil {
			svc.contacts = contacts
		}
		svc.now = func() time.Time { return fixed }
		svc.newID = func() string { return "fixed-id" }
		return svc
	}

	t.Run("durable insert when the relational store accepts", func(t *testing.T) {
		contacts := &stubContacts{}
		svc := newSvc(contacts, nil)

		sub := svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		assert.Equal(t, "fixed-id", sub.ID)
		assert.Equal(t, fixed, sub.CreatedAt)
		require.Len(t, contacts.inserted, 1)
		assert.Equal(t, "ada@example.com", contacts.inserted[0].Email)

		assert.Zero(t, svc.SubmissionCount(ctx)) // stub count, not the in-memory list
	})

	t.Run("insert failure keeps the submission in memory", func(t *testing.T) {
		contacts := &stubContacts{insertErr: errors.New("db down")}
		svc := newSvc(contacts, nil)

		sub := svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		assert.Equal(t, "fixed-id", sub.ID)
		assert.Empty(t, contacts.inserted)

		// count falls through to the in-memory list when the store fails too
		contacts.countErr = errors.New("db down")
		assert.Equal(t, 1, svc.SubmissionCount(ctx))
	})

	t.Run("no relational store means in-memory only", func(t *testing.T) {
		svc := newSvc(nil, nil)

		svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		svc.SaveContact(ctx, "Bea", "bea@example.com", "hello again")
		assert.Equal(t, 2, svc.SubmissionCount(ctx))
	})

	t.Run("notifier receives the stored submission", func(t *testing.T) {
		n := &stubNotifier{done: make(chan domain.ContactSubmission, 1)}
		svc := newSvc(nil, n)

		svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		select {
		case got := <-n.done:
			assert.Equal(t, "fixed-id", got.ID)
		case <-time.After(time.Second):
			t.Fatal("notification never dispatched")
		}
	})

	t.Run("notifier error does not affect the result", func(t *testing.T) {
		n := &stubNotifier{done: make(chan domain.ContactSubmission, 1), err: errors.New("smtp down")}
		svc := newSvc(nil, n)

		sub := svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		assert.Equal(t, "fixed-id", sub.ID)
		<-n.done
	})

	t.Run("notifier panic is contained", func(t *testing.T) {
		n := &stubNotifier{done: make(chan domain.ContactSubmission, 1), panic: true}
		svc := newSvc(nil, n)

		sub := svc.SaveContact(ctx, "Ada", "ada@example.com", "hello there")
		assert.Equal(t, "fixed-id", sub.ID)
		<-n.done
	})
}

func TestDataService_SubmissionCount(t *testing.T) {
	contacts := &stubContacts{count: 42}
	svc := NewDataService(nil, &stubReader{}, contacts, nil)
	assert.Equal(t, 42, svc.SubmissionCount(context.Background()))
}
