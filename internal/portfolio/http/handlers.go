package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-site/go-portfolio-backend/internal/api/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

type listQuery struct {
	category string
	search   string
	page     int
	limit    int
}

func parseListQuery(c *gin.Context) (listQuery, error) {
	q := listQuery{
		category: c.Query("category"),
		search:   c.Query("search"),
		page:     defaultPage,
		limit:    defaultLimit,
	}

	if q.category != "" && q.category != domain.CategoryAll && !domain.ValidCategory(q.category) {
		return q, fmt.Errorf("unknown category %q", q.category)
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, fmt.Errorf("page must be a positive integer")
		}
		q.page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return q, fmt.Errorf("limit must be between 1 and %d", maxLimit)
		}
		q.limit = limit
	}

	return q, nil
}

// list serves GET /projects: filter by category and search term, then
// paginate. The response carries list-shape items only; detail fields are
// reserved for the single-item endpoint.
func (h *Handler) list(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		httpapi.ValidationError(c, "invalid query parameters", err.Error())
		return
	}

	all := h.svc.ListProjects(c.Request.Context())

	filtered := all
	if q.category != "" && q.category != domain.CategoryAll {
		filtered = make([]domain.ProjectDetail, 0, len(all))
		for _, p := range all {
			if p.Category == q.category {
				filtered = append(filtered, p)
			}
		}
	}

	if term := strings.ToLower(strings.TrimSpace(q.search)); term != "" {
		matched := make([]domain.ProjectDetail, 0, len(filtered))
		for _, p := range filtered {
			if matchesSearch(p, term) {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	total := len(filtered)
	start := (q.page - 1) * q.limit
	if start > total {
		start = total
	}
	end := start + q.limit
	if end > total {
		end = total
	}

	items := make([]domain.Project, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, p.Project)
	}

	httpapi.Success(c, http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  q.page,
		"limit": q.limit,
	})
}

// matchesSearch reports a case-insensitive substring match on title,
// description, or any tag; one matching field is sufficient.
func matchesSearch(p domain.ProjectDetail, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (h *Handler) get(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		httpapi.ValidationError(c, "project slug is required", nil)
		return
	}

	p, err := h.svc.GetProjectBySlug(c.Request.Context(), slug)
	if err != nil {
		httpapi.NotFound(c, fmt.Sprintf("project %q not found", slug))
		return
	}

	httpapi.Success(c, http.StatusOK, p)
}

func (h *Handler) contact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, "invalid contact form data", err.Error())
		return
	}

	sub := h.svc.SaveContact(c.Request.Context(), req.Name, req.Email, req.Message)

	httpapi.Success(c, http.StatusCreated, contactResp{
		ID:        sub.ID,
		CreatedAt: sub.CreatedAt.Format(time.RFC3339),
	})
}
