package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

// PedidoHandler páginas de CRUD de pedidos a fornecedores.
type PedidoHandler struct {
	base
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, sessions *session.Store) *PedidoHandler {
	return &PedidoHandler{base: base{sessions: sessions}, uc: uc}
}

// Listar GET /pedidos/
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.PedidoFilter{
		Status:       c.Query("status"),
		FornecedorID: int64(c.QueryInt("fornecedor")),
	}
	pedidos, err := h.uc.Listar(c.UserContext(), filtro)
	if err != nil {
		return err
	}
	fornecedores, err := h.uc.FornecedoresDisponiveis(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, "pages/pedidos", fiber.Map{
		"Titulo":           "Pedidos",
		"Pedidos":          pedidos,
		"Fornecedores":     fornecedores,
		"StatusFiltro":     filtro.Status,
		"FornecedorFiltro": filtro.FornecedorID,
		"StatusChoices":    entity.StatusPedido,
	})
}

// NovoForm GET /pedidos/novo/
func (h *PedidoHandler) NovoForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Novo Pedido", dto.PedidoForm{Status: entity.PedidoPendente}, dto.FieldErrors{})
}

// Criar POST /pedidos/novo/
func (h *PedidoHandler) Criar(c *fiber.Ctx) error {
	var form dto.PedidoForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Criar(c.UserContext(), form, usuarioID(c))
	if err != nil {
		return err
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Novo Pedido", form, fe)
	}
	h.flash(c, flashSuccess, "Pedido criado com sucesso!")
	return c.Redirect("/pedidos/", fiber.StatusFound)
}

// EditarForm GET /pedidos/:id/editar/
func (h *PedidoHandler) EditarForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderForm(c, "Editar Pedido", dto.FormDoPedido(p), dto.FieldErrors{})
}

// Atualizar POST /pedidos/:id/editar/
func (h *PedidoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form dto.PedidoForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, fe, err := h.uc.Atualizar(c.UserContext(), id, form, usuarioID(c))
	if err != nil {
		return trataErro(err)
	}
	if fe.HasErrors() {
		return h.renderForm(c, "Editar Pedido", form, fe)
	}
	h.flash(c, flashSuccess, "Pedido atualizado com sucesso!")
	return c.Redirect("/pedidos/", fiber.StatusFound)
}

// ConfirmarExclusao GET /pedidos/:id/excluir/
func (h *PedidoHandler) ConfirmarExclusao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Obter(c.UserContext(), id)
	if err != nil {
		return trataErro(err)
	}
	return h.renderConfirmacao(c, p)
}

// Excluir POST /pedidos/:id/excluir/
func (h *PedidoHandler) Excluir(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Excluir(c.UserContext(), id, usuarioID(c)); err != nil {
		return trataErro(err)
	}
	h.flash(c, flashSuccess, "Pedido excluído com sucesso!")
	return c.Redirect("/pedidos/", fiber.StatusFound)
}

func (h *PedidoHandler) renderForm(c *fiber.Ctx, titulo string, form dto.PedidoForm, fe dto.FieldErrors) error {
	fornecedores, err := h.uc.FornecedoresDisponiveis(c.UserContext())
	if err != nil {
		return err
	}
	itens, err := h.uc.ItensDisponiveis(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, "pages/pedido_form", fiber.Map{
		"Titulo":        titulo,
		"Form":          form,
		"Erros":         fe,
		"Fornecedores":  fornecedores,
		"Itens":         itens,
		"StatusChoices": entity.StatusPedido,
		"Acao":          c.Path(),
	})
}

func (h *PedidoHandler) renderConfirmacao(c *fiber.Ctx, p *entity.Pedido) error {
	objeto := p.ItemNome
	if objeto == "" {
		objeto = "este pedido"
	}
	return h.render(c, "pages/confirmar_exclusao", fiber.Map{
		"Titulo":    "Excluir Pedido",
		"Objeto":    fmt.Sprintf("pedido #%d (%s)", p.ID, objeto),
		"Acao":      c.Path(),
		"VoltarURL": "/pedidos/",
	})
}
