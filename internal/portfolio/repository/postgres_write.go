package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

func (s *PostgresStore) InsertContact(ctx context.Context, sub domain.ContactSubmission) error {
	const q = `
INSERT INTO contacts (id, name, email, message, created_at)
VALUES ($1, $2, $3, $4, $5);
`
	_, err := s.db.ExecContext(ctx, q, sub.ID, sub.Name, sub.Email, sub.Message, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (s *PostgresStore) ContactCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

// UpsertProject writes a full project detail into the normalized tables in
// one transaction. Child tables are rewritten wholesale; their insert order
// is the authored order, carried by the explicit sort_order column.
func (s *PostgresStore) UpsertProject(ctx context.Context, p domain.ProjectDetail) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	const projectQ = `
INSERT INTO projects (id, slug, title, description, category, role, period, thumbnail_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
  slug = EXCLUDED.slug,
  title = EXCLUDED.title,
  description = EXCLUDED.description,
  category = EXCLUDED.category,
  role = EXCLUDED.role,
  period = EXCLUDED.period,
  thumbnail_url = EXCLUDED.thumbnail_url,
  updated_at = EXCLUDED.updated_at;
`
	_, err = tx.ExecContext(ctx, projectQ,
		p.ID, p.Slug, p.Title, p.Description, p.Category,
		nullable(p.Role), nullable(p.Period), nullable(p.ThumbnailURL),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert project %q: %w", p.Slug, err)
	}

	for _, table := range []string{
		"project_tags", "project_tech_stack", "project_links",
		"project_kpis", "project_sections", "project_screenshots",
	} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1;`, table), p.ID); err != nil {
			return fmt.Errorf("clear %s for %q: %w", table, p.Slug, err)
		}
	}

	for _, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_tags (project_id, tag) VALUES ($1, $2);`, p.ID, tag); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}
	for _, tech := range p.TechStack {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_tech_stack (project_id, tech) VALUES ($1, $2);`, p.ID, tech); err != nil {
			return fmt.Errorf("insert tech: %w", err)
		}
	}
	for kind, url := range map[string]string{
		"demo":    p.Links.Demo,
		"github":  p.Links.GitHub,
		"article": p.Links.Article,
	} {
		if url == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_links (project_id, type, url) VALUES ($1, $2, $3);`, p.ID, kind, url); err != nil {
			return fmt.Errorf("insert link: %w", err)
		}
	}
	for i, kpi := range p.KPIs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_kpis (project_id, label, value, sort_order) VALUES ($1, $2, $3, $4);`,
			p.ID, kpi.Label, kpi.Value, i); err != nil {
			return fmt.Errorf("insert kpi: %w", err)
		}
	}
	if err := insertSections(ctx, tx, p); err != nil {
		return err
	}
	for i, url := range p.Screenshots {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_screenshots (project_id, url, sort_order) VALUES ($1, $2, $3);`,
			p.ID, url, i); err != nil {
			return fmt.Errorf("insert screenshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert %q: %w", p.Slug, err)
	}
	return nil
}

func insertSections(ctx context.Context, tx *sql.Tx, p domain.ProjectDetail) error {
	const q = `
INSERT INTO project_sections (project_id, section_type, title, content, sort_order)
VALUES ($1, $2, $3, $4, $5);
`
	if p.Background != "" {
		if _, err := tx.ExecContext(ctx, q, p.ID, sectionBackground, nil, p.Background, 0); err != nil {
			return fmt.Errorf("insert background: %w", err)
		}
	}
	for i, r := range p.Responsibilities {
		if _, err := tx.ExecContext(ctx, q, p.ID, sectionResponsibility, nil, r, i); err != nil {
			return fmt.Errorf("insert responsibility: %w", err)
		}
	}
	for i, sec := range p.TechnicalSolution {
		if _, err := tx.ExecContext(ctx, q, p.ID, sectionTechnicalSolution, nullable(sec.Title), sec.Description, i); err != nil {
			return fmt.Errorf("insert technical solution: %w", err)
		}
	}
	for i, sec := range p.Challenges {
		if _, err := tx.ExecContext(ctx, q, p.ID, sectionChallenge, nullable(sec.Title), sec.Description, i); err != nil {
			return fmt.Errorf("insert challenge: %w", err)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
