package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Autenticação e sessão
// ──────────────────────────────────────────────────────────────────────────────

func TestRotasProtegidas_SemSessaoRedirecionamParaLogin(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, path := range []string{"/", "/inventario/", "/fornecedores/", "/pedidos/", "/lojas/", "/inventario/novo/"} {
		resp := doGET(t, app, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, "GET %s sem sessão", path)
		assert.Equal(t, "/login/", resp.Header.Get("Location"), "GET %s sem sessão", path)
	}
}

func TestLogin_FluxoCompleto(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")

	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doGET(t, app, "/", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyString(t, resp)
	assert.Contains(t, body, "Dashboard")
	assert.Contains(t, body, "Login realizado com sucesso!", "o flash aparece na primeira página após o redirect")

	// O flash é de exibição única.
	resp = doGET(t, app, "/", cookie)
	assert.NotContains(t, bodyString(t, resp), "Login realizado com sucesso!")
}

func TestLogin_SenhaErradaReexibeComErro(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")

	resp := doForm(t, app, "/login/", url.Values{
		"username": {"maria"},
		"senha":    {"errada"},
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Usuário ou senha inválidos.")
}

func TestLogin_UsuarioAutenticadoERedirecionadoDeVolta(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	for _, path := range []string{"/login/", "/registrar/"} {
		resp := doGET(t, app, path, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, "GET %s autenticado", path)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

func TestLogout_EncerraASessao(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doGET(t, app, "/logout/", cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login/", resp.Header.Get("Location"))

	resp = doGET(t, app, "/", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode, "o cookie antigo não vale mais")
}

func TestRegistrar_CriaContaEPermiteLogin(t *testing.T) {
	app, fx := buildTestApp(t)

	resp := doForm(t, app, "/registrar/", url.Values{
		"username":      {"joao"},
		"nome_completo": {"João Pedro"},
		"perfil":        {"TECNICO_TI"},
		"senha1":        {"senha-forte-2"},
		"senha2":        {"senha-forte-2"},
	}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login/", resp.Header.Get("Location"))
	require.Len(t, fx.usuarios.rows, 1)

	login(t, app, "joao", "senha-forte-2")
}

func TestRegistrar_SenhasDiferentesReexibemOFormulario(t *testing.T) {
	app, fx := buildTestApp(t)

	resp := doForm(t, app, "/registrar/", url.Values{
		"username": {"joao"},
		"perfil":   {"TECNICO_TI"},
		"senha1":   {"senha-forte-2"},
		"senha2":   {"diferente"},
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Os dois campos de senha não correspondem.")
	assert.Empty(t, fx.usuarios.rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de fornecedores
// ──────────────────────────────────────────────────────────────────────────────

func TestFornecedorCriar_ValidoRedirecionaEPersiste(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doForm(t, app, "/fornecedores/novo/", url.Values{
		"nome":   {"TechSupply"},
		"cnpj":   {"12.345.678/0001-90"},
		"status": {"ATIVO"},
	}, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/fornecedores/", resp.Header.Get("Location"))
	require.Len(t, fx.fornecedores.rows, 1)
	assert.NotEmpty(t, fx.auditoria.registros, "a criação gera trilha de auditoria")
}

func TestFornecedorCriar_InvalidoReexibeComErrosInline(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doForm(t, app, "/fornecedores/novo/", url.Values{
		"nome":   {""},
		"status": {"ATIVO"},
	}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "falha de validação reexibe a página, não redireciona")
	assert.Contains(t, bodyString(t, resp), "Este campo é obrigatório.")
	assert.Empty(t, fx.fornecedores.rows)
}

func TestFornecedorExcluir_ProtegidoPorPedidosReexibeConfirmacao(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	f := &entity.Fornecedor{Nome: "TechSupply", Status: entity.FornecedorAtivo}
	require.NoError(t, fx.fornecedores.Create(t.Context(), f))
	fx.fornecedores.deleteErr = domain.ErrProtegido

	resp := doForm(t, app, "/fornecedores/1/excluir/", url.Values{}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Não é possível excluir")
	assert.Len(t, fx.fornecedores.rows, 1, "a linha protegida permanece")
}

func TestFornecedorEditar_IDInexistenteDevolve404(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	for _, path := range []string{"/fornecedores/99/editar/", "/fornecedores/abc/editar/"} {
		resp := doGET(t, app, path, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "GET %s", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventário
// ──────────────────────────────────────────────────────────────────────────────

func TestInventario_FiltraPorBuscaEStatus(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	ctx := t.Context()
	require.NoError(t, fx.itens.Create(ctx, &entity.Item{
		Nome: "Notebook Dell", Status: entity.ItemDisponivel, Valor: decimal.NewFromInt(5000),
	}))
	require.NoError(t, fx.itens.Create(ctx, &entity.Item{
		Nome: "Teclado ABNT2", Status: entity.ItemBaixaQuantidade, Valor: decimal.NewFromInt(80),
	}))

	body := bodyString(t, doGET(t, app, "/inventario/?q=note", cookie))
	assert.Contains(t, body, "Notebook Dell")
	assert.NotContains(t, body, "Teclado ABNT2")

	body = bodyString(t, doGET(t, app, "/inventario/?status=BAIXA_QUANTIDADE", cookie))
	assert.NotContains(t, body, "Notebook Dell")
	assert.Contains(t, body, "Teclado ABNT2")
}

func TestInventarioCriar_ValorInvalidoReexibeComErro(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doForm(t, app, "/inventario/novo/", url.Values{
		"nome":       {"Mouse"},
		"quantidade": {"5"},
		"status":     {"DISPONIVEL"},
		"valor":      {"caro demais"},
	}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Informe um número válido.")
	assert.Empty(t, fx.itens.rows)
}

func TestInventarioRelatorio_DevolvePDF(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doGET(t, app, "/inventario/relatorio/", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, bodyString(t, resp), "%PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCriar_ReferenciaInvalidaReexibeComErro(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	require.NoError(t, fx.itens.Create(t.Context(), &entity.Item{
		Nome: "Notebook Dell", Status: entity.ItemDisponivel,
	}))

	resp := doForm(t, app, "/pedidos/novo/", url.Values{
		"fornecedor": {"99"},
		"item":       {"1"},
		"quantidade": {"3"},
		"status":     {"PENDENTE"},
	}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Escolha uma opção válida.")
	assert.Empty(t, fx.pedidos.rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aliases herdados e rotas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestAliasesLegados_RespondemComAsMesmasPaginas(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	for _, path := range []string{"/itens/", "/itens/novo/", "/produto/novo/", "/fornecedores/criar/", "/lojas/nova/"} {
		resp := doGET(t, app, path, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	}

	// O POST do alias também cria.
	resp := doForm(t, app, "/fornecedores/criar/", url.Values{
		"nome":   {"InfoParts"},
		"status": {"ATIVO"},
	}, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Len(t, fx.fornecedores.rows, 1)
}

func TestLojaCriar_RotaNovoRedirecionaEPersiste(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doGET(t, app, "/lojas/novo/", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doForm(t, app, "/lojas/novo/", url.Values{
		"nome":   {"Loja Centro"},
		"status": {"ATIVA"},
	}, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/lojas/", resp.Header.Get("Location"))
	assert.Len(t, fx.lojas.rows, 1)
}

func TestRegistrar_FormularioSugereTecnicoDeTI(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doGET(t, app, "/registrar/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), `value="TECNICO_TI" selected`)
}

func TestMetrics_PublicoSemSessao(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doGET(t, app, "/metrics", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPaginaInexistente_Autenticado404ComPaginaHTML(t *testing.T) {
	app, fx := buildTestApp(t)
	criaUsuario(t, fx, "maria", "senha-forte-1")
	cookie := login(t, app, "maria", "senha-forte-1")

	resp := doGET(t, app, "/nao-existe/", cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "A página que você procura não existe.")
}
