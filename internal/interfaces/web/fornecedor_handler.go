package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

// FornecedorHandler páginas de CRUD de fornecedores.
type FornecedorHandler struct {
	base
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase, sessions *session.Store) *FornecedorHandler {
	return &FornecedorHandler{base: base{sessions: sessions}, uc: uc}
}

// Listar GET /fornecedores/
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.FornecedorFilter{
		Busca:  strings.TrimSpace(c.Query("q")),
		Status: c.Query("status"),
	}
	fornecedores, err := h.uc.Listar(c.UserContext(), filtro)
	if err != nil {
		return err
	}
	return h.render(c, "pages/fornecedores", fiber.Map{
		"Titulo":        "Fornecedores",
		"Fornecedores":  fornecedores,
		"Busca":         filtro.Busca,
		"StatusFiltro":  filtro.Status,
		"StatusChoices": entity.StatusFornecedor,
	})
}

// NovoForm GET /fornecedores/novo/
func (h *FornecedorHandler) NovoForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Novo Fornecedor", dto.FornecedorForm{Status: entity.FornecedorAtivo}, dto.FieldErrors{})
}

// Criar POST /fornecedores/novo/
func (h *FornecedorHandler) Criar(c *fiber.Ctx) error {
	var form dto.FornecedorForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Criar(c.UserContext(), form, usuarioID(c))
	if err != nil {
		return err
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Novo Fornecedor", form, fe)
	}
	h.flash(c, flashSuccess, "Fornecedor cadastrado com sucesso!")
	return c.Redirect("/fornecedores/", fiber.StatusFound)
}

// EditarForm GET /fornecedores/:id/editar/
func (h *FornecedorHandler) EditarForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	f, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderForm(c, "Editar Fornecedor", dto.FormDoFornecedor(f), dto.FieldErrors{})
}

// Atualizar POST /fornecedores/:id/editar/
func (h *FornecedorHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form dto.FornecedorForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Atualizar(c.UserContext(), id, form, usuarioID(c))
	if err != nil {
		return trataErro(err)
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Editar Fornecedor", form, fe)
	}
	h.flash(c, flashSuccess, "Fornecedor atualizado com sucesso!")
	return c.Redirect("/fornecedores/", fiber.StatusFound)
}

// ConfirmarExclusao GET /fornecedores/:id/excluir/
func (h *FornecedorHandler) ConfirmarExclusao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	f, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderConfirmacao(c, f, "")
}

// Excluir POST /fornecedores/:id/excluir/. Pedidos vinculados bloqueiam a exclusão.
func (h *FornecedorHandler) Excluir(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	err = h.uc.Excluir(c.UserContext(), id, usuarioID(c))
	if errors.Is(err, domain.ErrProtegido) {
		f, errObter := h.uc.Obter(c.UserContext(), id)
		if errObter != nil {
			return trataErro(errObter)
		}
		return h.renderConfirmacao(c, f,
			"Não é possível excluir: existem pedidos vinculados a este fornecedor.")
	}
	if err != nil {
		return trataErro(err)
	}
	h.flash(c, flashSuccess, "Fornecedor excluído com sucesso!")
	return c.Redirect("/fornecedores/", fiber.StatusFound)
}

func (h *FornecedorHandler) renderForm(c *fiber.Ctx, titulo string, form dto.FornecedorForm, fe dto.FieldErrors) error {
	return h.render(c, "pages/fornecedor_form", fiber.Map{
		"Titulo":        titulo,
		"Form":          form,
		"Erros":         fe,
		"StatusChoices": entity.StatusFornecedor,
		"Acao":          c.Path(),
	})
}

func (h *FornecedorHandler) renderConfirmacao(c *fiber.Ctx, f *entity.Fornecedor, erro string) error {
	return h.render(c, "pages/confirmar_exclusao", fiber.Map{
		"Titulo":    "Excluir Fornecedor",
		"Objeto":    f.Nome,
		"Acao":      c.Path(),
		"VoltarURL": "/fornecedores/",
		"Erro":      erro,
	})
}
