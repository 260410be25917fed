package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-site/go-portfolio-backend/internal/api/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/content"
)

// Handler serves the named sections of the cached content document plus the
// resume artifact download.
type Handler struct {
	cache      *content.Cache
	resumePath string
}

func New(cache *content.Cache, resumePath string) *Handler {
	return &Handler{cache: cache, resumePath: resumePath}
}

// section wraps a content read. Unlike project reads there is no safe empty
// default here: an unpopulated site document is not renderable, so a cache
// failure surfaces as an internal error.
func (h *Handler) section(c *gin.Context, pick func(*content.Document) any) {
	doc, err := h.cache.Get()
	if err != nil {
		slog.Error("content document unavailable", "error", err)
		httpapi.InternalError(c, "failed to load site content")
		return
	}

	httpapi.Success(c, http.StatusOK, pick(doc))
}

func (h *Handler) site(c *gin.Context) {
	h.section(c, func(d *content.Document) any { return d.Site })
}

func (h *Handler) home(c *gin.Context) {
	h.section(c, func(d *content.Document) any { return d.Home })
}

func (h *Handler) about(c *gin.Context) {
	h.section(c, func(d *content.Document) any { return d.About })
}

func (h *Handler) contactInfo(c *gin.Context) {
	h.section(c, func(d *content.Document) any { return d.Contact })
}

func (h *Handler) resume(c *gin.Context) {
	h.section(c, func(d *content.Document) any { return d.Resume })
}

func (h *Handler) resumeDownload(c *gin.Context) {
	if _, err := os.Stat(h.resumePath); err != nil {
		httpapi.NotFound(c, "resume file not found")
		return
	}

	c.FileAttachment(h.resumePath, "resume.pdf")
}

// Register attaches content routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/site", h.site)
	rg.GET("/home", h.home)
	rg.GET("/about", h.about)
	rg.GET("/contact-info", h.contactInfo)
	rg.GET("/resume", h.resume)
	rg.GET("/resume/download", h.resumeDownload)
}
