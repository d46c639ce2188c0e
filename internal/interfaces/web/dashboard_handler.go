package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/usecase"
)

// DashboardHandler página inicial com os agregados ao vivo.
type DashboardHandler struct {
	base
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, sessions *session.Store) *DashboardHandler {
	return &DashboardHandler{base: base{sessions: sessions}, uc: uc}
}

// Painel GET /
func (h *DashboardHandler) Painel(c *fiber.Ctx) error {
	painel, err := h.uc.Painel(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, "pages/dashboard", fiber.Map{
		"Titulo":       "Dashboard",
		"Resumo":       painel.Resumo,
		"EstoqueBaixo": painel.EstoqueBaixo,
	})
}
