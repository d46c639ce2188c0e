package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

// LojaHandler páginas de CRUD de lojas.
type LojaHandler struct {
	base
	uc *usecase.LojaUseCase
}

// NewLojaHandler constrói o handler.
func NewLojaHandler(uc *usecase.LojaUseCase, sessions *session.Store) *LojaHandler {
	return &LojaHandler{base: base{sessions: sessions}, uc: uc}
}

// Listar GET /lojas/
func (h *LojaHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.LojaFilter{
		Busca:  strings.TrimSpace(c.Query("q")),
		Status: c.Query("status"),
	}
	lojas, err := h.uc.Listar(c.UserContext(), filtro)
	if err != nil {
		return err
	}
	return h.render(c, "pages/lojas", fiber.Map{
		"Titulo":        "Lojas",
		"Lojas":         lojas,
		"Busca":         filtro.Busca,
		"StatusFiltro":  filtro.Status,
		"StatusChoices": entity.StatusLoja,
	})
}

// NovaForm GET /lojas/novo/
func (h *LojaHandler) NovaForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Nova Loja", dto.LojaForm{Status: entity.LojaAtiva}, dto.FieldErrors{})
}

// Criar POST /lojas/novo/
func (h *LojaHandler) Criar(c *fiber.Ctx) error {
	var form dto.LojaForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Criar(c.UserContext(), form, usuarioID(c))
	if err != nil {
		return err
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Nova Loja", form, fe)
	}
	h.flash(c, flashSuccess, "Loja cadastrada com sucesso!")
	return c.Redirect("/lojas/", fiber.StatusFound)
}

// EditarForm GET /lojas/:id/editar/
func (h *LojaHandler) EditarForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	l, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderForm(c, "Editar Loja", dto.FormDaLoja(l), dto.FieldErrors{})
}

// Atualizar POST /lojas/:id/editar/
func (h *LojaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form dto.LojaForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Atualizar(c.UserContext(), id, form, usuarioID(c))
	if err != nil {
		return trataErro(err)
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Editar Loja", form, fe)
	}
	h.flash(c, flashSuccess, "Loja atualizada com sucesso!")
	return c.Redirect("/lojas/", fiber.StatusFound)
}

// ConfirmarExclusao GET /lojas/:id/excluir/
func (h *LojaHandler) ConfirmarExclusao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	l, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.render(c, "pages/confirmar_exclusao", fiber.Map{
		"Titulo":    "Excluir Loja",
		"Objeto":    l.Nome,
		"Acao":      c.Path(),
		"VoltarURL": "/lojas/",
	})
}

// Excluir POST /lojas/:id/excluir/
func (h *LojaHandler) Excluir(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Excluir(c.UserContext(), id, usuarioID(c)); err != nil {
		return trataErro(err)
	}
	h.flash(c, flashSuccess, "Loja excluída com sucesso!")
	return c.Redirect("/lojas/", fiber.StatusFound)
}

func (h *LojaHandler) renderForm(c *fiber.Ctx, titulo string, form dto.LojaForm, fe dto.FieldErrors) error {
	return h.render(c, "pages/loja_form", fiber.Map{
		"Titulo":        titulo,
		"Form":          form,
		"Erros":         fe,
		"StatusChoices": entity.StatusLoja,
		"Acao":          c.Path(),
	})
}
