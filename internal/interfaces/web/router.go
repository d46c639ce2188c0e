package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/pkg/metrics"
)

// RouterDeps dependências para o registro das rotas.
type RouterDeps struct {
	Sessions     *session.Store
	AuthUC       *usecase.AuthUseCase
	DashboardUC  *usecase.DashboardUseCase
	ItemUC       *usecase.ItemUseCase
	RelatorioUC  *usecase.RelatorioUseCase
	FornecedorUC *usecase.FornecedorUseCase
	PedidoUC     *usecase.PedidoUseCase
	LojaUC       *usecase.LojaUseCase
}

// Router registra as rotas da aplicação: páginas públicas de autenticação,
// páginas protegidas por sessão e os aliases herdados das primeiras versões.
func Router(app *fiber.App, deps RouterDeps) {
	auth := NewAuthHandler(deps.AuthUC, deps.Sessions)
	dashboard := NewDashboardHandler(deps.DashboardUC, deps.Sessions)
	item := NewItemHandler(deps.ItemUC, deps.RelatorioUC, deps.Sessions)
	fornecedor := NewFornecedorHandler(deps.FornecedorUC, deps.Sessions)
	pedido := NewPedidoHandler(deps.PedidoUC, deps.Sessions)
	loja := NewLojaHandler(deps.LojaUC, deps.Sessions)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Autenticação (público; usuários logados voltam para a página inicial)
	soAnonimo := RedirectAutenticado(deps.Sessions)
	app.Get("/login/", soAnonimo, auth.LoginForm)
	app.Post("/login/", soAnonimo, auth.Login)
	app.Get("/registrar/", soAnonimo, auth.RegistroForm)
	app.Post("/registrar/", soAnonimo, auth.Registrar)

	// Tudo abaixo exige sessão de login.
	autenticado := app.Group("/", RequireAuth(deps.Sessions))
	autenticado.Get("/", dashboard.Painel)
	autenticado.Get("/logout/", auth.Logout)

	inv := autenticado.Group("/inventario")
	inv.Get("/", item.Listar)
	inv.Get("/relatorio/", item.Relatorio)
	inv.Get("/novo/", item.NovoForm)
	inv.Post("/novo/", item.Criar)
	inv.Get("/:id/editar/", item.EditarForm)
	inv.Post("/:id/editar/", item.Atualizar)
	inv.Get("/:id/excluir/", item.ConfirmarExclusao)
	inv.Post("/:id/excluir/", item.Excluir)

	forn := autenticado.Group("/fornecedores")
	forn.Get("/", fornecedor.Listar)
	forn.Get("/novo/", fornecedor.NovoForm)
	forn.Post("/novo/", fornecedor.Criar)
	forn.Get("/:id/editar/", fornecedor.EditarForm)
	forn.Post("/:id/editar/", fornecedor.Atualizar)
	forn.Get("/:id/excluir/", fornecedor.ConfirmarExclusao)
	forn.Post("/:id/excluir/", fornecedor.Excluir)

	ped := autenticado.Group("/pedidos")
	ped.Get("/", pedido.Listar)
	ped.Get("/novo/", pedido.NovoForm)
	ped.Post("/novo/", pedido.Criar)
	ped.Get("/:id/editar/", pedido.EditarForm)
	ped.Post("/:id/editar/", pedido.Atualizar)
	ped.Get("/:id/excluir/", pedido.ConfirmarExclusao)
	ped.Post("/:id/excluir/", pedido.Excluir)

	lojas := autenticado.Group("/lojas")
	lojas.Get("/", loja.Listar)
	lojas.Get("/novo/", loja.NovaForm)
	lojas.Post("/novo/", loja.Criar)
	lojas.Get("/:id/editar/", loja.EditarForm)
	lojas.Post("/:id/editar/", loja.Atualizar)
	lojas.Get("/:id/excluir/", loja.ConfirmarExclusao)
	lojas.Post("/:id/excluir/", loja.Excluir)

	// Aliases herdados das primeiras versões das rotas; continuam respondendo
	// com as mesmas páginas.
	autenticado.Get("/itens/", item.Listar)
	autenticado.Get("/itens/novo/", item.NovoForm)
	autenticado.Post("/itens/novo/", item.Criar)
	autenticado.Get("/produto/novo/", item.NovoForm)
	autenticado.Post("/produto/novo/", item.Criar)
	autenticado.Get("/fornecedores/criar/", fornecedor.NovoForm)
	autenticado.Post("/fornecedores/criar/", fornecedor.Criar)
	autenticado.Get("/lojas/nova/", loja.NovaForm)
	autenticado.Post("/lojas/nova/", loja.Criar)
}
