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

// ItemHandler páginas de CRUD do inventário e o relatório em PDF.
type ItemHandler struct {
	base
	uc        *usecase.ItemUseCase
	relatorio *usecase.RelatorioUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *usecase.ItemUseCase, relatorio *usecase.RelatorioUseCase, sessions *session.Store) *ItemHandler {
	return &ItemHandler{base: base{sessions: sessions}, uc: uc, relatorio: relatorio}
}

// filtro monta o filtro da listagem a partir da query string.
func (h *ItemHandler) filtro(c *fiber.Ctx) repository.ItemFilter {
	return repository.ItemFilter{
		Busca:  strings.TrimSpace(c.Query("q")),
		Status: c.Query("status"),
	}
}

// Listar GET /inventario/
func (h *ItemHandler) Listar(c *fiber.Ctx) error {
	filtro := h.filtro(c)
	itens, err := h.uc.Listar(c.UserContext(), filtro)
	if err != nil {
		return err
	}
	valorTotal, err := h.uc.ValorTotal(c.UserContext())
	if err != nil {
		return err
	}

	qs := string(c.Request().URI().QueryString())
	if qs != "" {
		qs = "?" + qs
	}
	return h.render(c, "pages/inventario", fiber.Map{
		"Titulo":        "Inventário",
		"Itens":         itens,
		"ValorTotal":    valorTotal,
		"Busca":         filtro.Busca,
		"StatusFiltro":  filtro.Status,
		"StatusChoices": entity.StatusItem,
		"QueryString":   qs,
	})
}

// Relatorio GET /inventario/relatorio/ gera o PDF com os mesmos filtros da listagem.
func (h *ItemHandler) Relatorio(c *fiber.Ctx) error {
	pdf, err := h.relatorio.InventarioPDF(c.UserContext(), h.filtro(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(pdf)
}

// NovoForm GET /inventario/novo/
func (h *ItemHandler) NovoForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Novo Item", dto.ItemForm{Status: entity.ItemDisponivel}, dto.FieldErrors{})
}

// Criar POST /inventario/novo/
func (h *ItemHandler) Criar(c *fiber.Ctx) error {
	var form dto.ItemForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Criar(c.UserContext(), form, usuarioID(c))
	if err != nil {
		return err
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Novo Item", form, fe)
	}
	h.flash(c, flashSuccess, "Item adicionado ao inventário!")
	return c.Redirect("/inventario/", fiber.StatusFound)
}

// EditarForm GET /inventario/:id/editar/
func (h *ItemHandler) EditarForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	i, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderForm(c, "Editar Item", dto.FormDoItem(i), dto.FieldErrors{})
}

// Atualizar POST /inventario/:id/editar/
func (h *ItemHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form dto.ItemForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Atualizar(c.UserContext(), id, form, usuarioID(c))
	if err != nil {
		return trataErro(err)
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Editar Item", form, fe)
	}
	h.flash(c, flashSuccess, "Item atualizado com sucesso!")
	return c.Redirect("/inventario/", fiber.StatusFound)
}

// ConfirmarExclusao GET /inventario/:id/excluir/
func (h *ItemHandler) ConfirmarExclusao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	i, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderConfirmacao(c, i, "")
}

// Excluir POST /inventario/:id/excluir/. Pedidos vinculados bloqueiam a exclusão.
func (h *ItemHandler) Excluir(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	err = h.uc.Excluir(c.UserContext(), id, usuarioID(c))
	if errors.Is(err, domain.ErrProtegido) {
		i, errObter := h.uc.Obter(c.UserContext(), id)
		if errObter != nil {
			return trataErro(errObter)
		}
		return h.renderConfirmacao(c, i,
			"Não é possível excluir: existem pedidos vinculados a este item.")
	}
	if err != nil {
		return trataErro(err)
	}
	h.flash(c, flashSuccess, "Item removido do inventário!")
	return c.Redirect("/inventario/", fiber.StatusFound)
}

func (h *ItemHandler) renderForm(c *fiber.Ctx, titulo string, form dto.ItemForm, fe dto.FieldErrors) error {
	return h.render(c, "pages/item_form", fiber.Map{
		"Titulo":        titulo,
		"Form":          form,
		"Erros":         fe,
		"StatusChoices": entity.StatusItem,
		"Acao":          c.Path(),
	})
}

func (h *ItemHandler) renderConfirmacao(c *fiber.Ctx, i *entity.Item, erro string) error {
	return h.render(c, "pages/confirmar_exclusao", fiber.Map{
		"Titulo":    "Excluir Item",
		"Objeto":    i.Nome,
		"Acao":      c.Path(),
		"VoltarURL": "/inventario/",
		"Erro":      erro,
	})
}
