package http

import "github.com/portfolio-site/go-portfolio-backend/internal/portfolio/service"

// Handler bundles the dependencies for project and contact HTTP endpoints.
type Handler struct {
	svc *service.DataService
}

func New(svc *service.DataService) *Handler {
	return &Handler{svc: svc}
}

type contactReq struct {
	Name    string `json:"name" binding:"required,min=1,max=50"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

type contactResp struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}
