package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

// Section types of the polymorphic project_sections table.
const (
	sectionBackground        = "background"
	sectionResponsibility    = "responsibility"
	sectionTechnicalSolution = "technical_solution"
	sectionChallenge         = "challenge"
)

// PostgresStore is the relational backend. Projects are normalized across a
// base table and six child tables; reads pivot the child rows back into the
// nested domain shape.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const projectColumns = `id, slug, title, description, category, role, period, thumbnail_url, created_at, updated_at`

func (s *PostgresStore) ListProjects(ctx context.Context) ([]domain.ProjectDetail, error) {
	q := fmt.Sprintf(`
SELECT %s
FROM projects
ORDER BY created_at DESC;
`, projectColumns)

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectDetail, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.loadChildren(ctx, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *PostgresStore) GetProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	q := fmt.Sprintf(`
SELECT %s
FROM projects
WHERE slug = $1;
`, projectColumns)

	row := s.db.QueryRowContext(ctx, q, slug)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("query project %q: %w", slug, err)
	}

	if err := s.loadChildren(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(r rowScanner) (*domain.ProjectDetail, error) {
	var (
		p         domain.ProjectDetail
		role      sql.NullString
		period    sql.NullString
		thumbnail sql.NullString
	)
	err := r.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.Category,
		&role, &period, &thumbnail, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Role = role.String
	p.Period = period.String
	p.ThumbnailURL = thumbnail.String
	return &p, nil
}

// loadChildren issues the six child-table queries concurrently and
// reassembles the rows into the nested detail shape. The fetches are
// read-only and commutative; all must complete before reassembly.
func (s *PostgresStore) loadChildren(ctx context.Context, p *domain.ProjectDetail) error {
	var (
		wg          sync.WaitGroup
		tags        []string
		tech        []string
		links       []linkRow
		kpis        []domain.KPI
		sections    []sectionRow
		screenshots []string
	)

	errCh := make(chan error, 6)
	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errCh <- err
			}
		}()
	}

	run(func() (err error) {
		tags, err = s.queryStrings(ctx,
			`SELECT tag FROM project_tags WHERE project_id = $1 ORDER BY tag;`, p.ID)
		return
	})
	run(func() (err error) {
		tech, err = s.queryStrings(ctx,
			`SELECT tech FROM project_tech_stack WHERE project_id = $1 ORDER BY tech;`, p.ID)
		return
	})
	run(func() (err error) {
		links, err = s.queryLinks(ctx, p.ID)
		return
	})
	run(func() (err error) {
		kpis, err = s.queryKPIs(ctx, p.ID)
		return
	})
	run(func() (err error) {
		sections, err = s.querySections(ctx, p.ID)
		return
	})
	run(func() (err error) {
		screenshots, err = s.queryStrings(ctx,
			`SELECT url FROM project_screenshots WHERE project_id = $1 ORDER BY sort_order, id;`, p.ID)
		return
	})

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return fmt.Errorf("load project %q children: %w", p.Slug, err)
	}

	p.Tags = tags
	p.TechStack = tech
	p.Screenshots = screenshots
	p.KPIs = kpis

	for _, l := range links {
		switch l.kind {
		case "demo":
			p.Links.Demo = l.url
		case "github":
			p.Links.GitHub = l.url
		case "article":
			p.Links.Article = l.url
		}
	}

	p.Background = ""
	p.Responsibilities = []string{}
	p.TechnicalSolution = []domain.TitledSection{}
	p.Challenges = []domain.TitledSection{}
	for _, sec := range sections {
		switch sec.kind {
		case sectionBackground:
			if p.Background == "" {
				p.Background = sec.content
			}
		case sectionResponsibility:
			p.Responsibilities = append(p.Responsibilities, sec.content)
		case sectionTechnicalSolution:
			p.TechnicalSolution = append(p.TechnicalSolution, domain.TitledSection{
				Title:       sec.title,
				Description: sec.content,
			})
		case sectionChallenge:
			p.Challenges = append(p.Challenges, domain.TitledSection{
				Title:       sec.title,
				Description: sec.content,
			})
		}
	}

	return nil
}

type linkRow struct {
	kind string
	url  string
}

type sectionRow struct {
	kind    string
	title   string
	content string
}

func (s *PostgresStore) queryStrings(ctx context.Context, q, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) queryLinks(ctx context.Context, projectID string) ([]linkRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, url FROM project_links WHERE project_id = $1;`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []linkRow
	for rows.Next() {
		var l linkRow
		if err := rows.Scan(&l.kind, &l.url); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresStore) queryKPIs(ctx context.Context, projectID string) ([]domain.KPI, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, value FROM project_kpis WHERE project_id = $1 ORDER BY sort_order, id;`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.KPI{}
	for rows.Next() {
		var k domain.KPI
		if err := rows.Scan(&k.Label, &k.Value); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (s *PostgresStore) querySections(ctx context.Context, projectID string) ([]sectionRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT section_type, title, content FROM project_sections WHERE project_id = $1 ORDER BY section_type, sort_order, id;`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sectionRow
	for rows.Next() {
		var (
			sec   sectionRow
			title sql.NullString
		)
		if err := rows.Scan(&sec.kind, &title, &sec.content); err != nil {
			return nil, err
		}
		sec.title = title.String
		out = append(out, sec)
	}
	return out, rows.Err()
}
