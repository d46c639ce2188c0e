package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/internal/interfaces/web"
	"github.com/estoqueti/estoque-web/pkg/config"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

const testCookie = "estoque_session"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória das portas de persistência
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	seq  int64
	rows map[int64]*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.seq++
	u.ID = r.seq
	clone := *u
	r.rows[u.ID] = &clone
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUsuarioRepo) GetByUsername(_ context.Context, username string) (*entity.Usuario, error) {
	for _, u := range r.rows {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeFornecedorRepo struct {
	seq       int64
	rows      map[int64]*entity.Fornecedor
	deleteErr error
}

func (r *fakeFornecedorRepo) Create(_ context.Context, f *entity.Fornecedor) error {
	r.seq++
	f.ID = r.seq
	clone := *f
	r.rows[f.ID] = &clone
	return nil
}

func (r *fakeFornecedorRepo) GetByID(_ context.Context, id int64) (*entity.Fornecedor, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}

func (r *fakeFornecedorRepo) List(_ context.Context, filter repository.FornecedorFilter) ([]*entity.Fornecedor, error) {
	var out []*entity.Fornecedor
	for _, f := range r.rows {
		if filter.Busca != "" && !strings.Contains(strings.ToLower(f.Nome), strings.ToLower(filter.Busca)) {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeFornecedorRepo) Update(_ context.Context, f *entity.Fornecedor) error {
	clone := *f
	r.rows[f.ID] = &clone
	return nil
}

func (r *fakeFornecedorRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.rows, id)
	return nil
}

type fakeItemRepo struct {
	seq  int64
	rows map[int64]*entity.Item
}

func (r *fakeItemRepo) Create(_ context.Context, i *entity.Item) error {
	r.seq++
	i.ID = r.seq
	clone := *i
	r.rows[i.ID] = &clone
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	i, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *i
	return &clone, nil
}

func (r *fakeItemRepo) List(_ context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.rows {
		if filter.Busca != "" && !strings.Contains(strings.ToLower(i.Nome), strings.ToLower(filter.Busca)) {
			continue
		}
		if filter.Status != "" && i.Status != filter.Status {
			continue
		}
		clone := *i
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *entity.Item) error {
	clone := *i
	r.rows[i.ID] = &clone
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeItemRepo) SumValor(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range r.rows {
		total = total.Add(i.Valor)
	}
	return total, nil
}

type fakePedidoRepo struct {
	seq  int64
	rows map[int64]*entity.Pedido
}

func (r *fakePedidoRepo) Create(_ context.Context, p *entity.Pedido) error {
	r.seq++
	p.ID = r.seq
	clone := *p
	r.rows[p.ID] = &clone
	return nil
}

func (r *fakePedidoRepo) GetByID(_ context.Context, id int64) (*entity.Pedido, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePedidoRepo) List(_ context.Context, filter repository.PedidoFilter) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range r.rows {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.FornecedorID != 0 && p.FornecedorID != filter.FornecedorID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakePedidoRepo) Update(_ context.Context, p *entity.Pedido) error {
	clone := *p
	r.rows[p.ID] = &clone
	return nil
}

func (r *fakePedidoRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type fakeLojaRepo struct {
	seq  int64
	rows map[int64]*entity.Loja
}

func (r *fakeLojaRepo) Create(_ context.Context, l *entity.Loja) error {
	r.seq++
	l.ID = r.seq
	clone := *l
	r.rows[l.ID] = &clone
	return nil
}

func (r *fakeLojaRepo) GetByID(_ context.Context, id int64) (*entity.Loja, error) {
	l, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *l
	return &clone, nil
}

func (r *fakeLojaRepo) List(_ context.Context, filter repository.LojaFilter) ([]*entity.Loja, error) {
	var out []*entity.Loja
	for _, l := range r.rows {
		if filter.Busca != "" {
			busca := strings.ToLower(filter.Busca)
			if !strings.Contains(strings.ToLower(l.Nome), busca) &&
				!strings.Contains(strings.ToLower(l.Responsavel), busca) &&
				!strings.Contains(strings.ToLower(l.Cidade), busca) {
				continue
			}
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeLojaRepo) Update(_ context.Context, l *entity.Loja) error {
	clone := *l
	r.rows[l.ID] = &clone
	return nil
}

func (r *fakeLojaRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type fakeAuditoriaRepo struct {
	registros []*entity.HistoricoAuditoria
}

func (r *fakeAuditoriaRepo) Registrar(_ context.Context, h *entity.HistoricoAuditoria) error {
	r.registros = append(r.registros, h)
	return nil
}

// fakeDashboardRepo agrega em memória sobre os demais fakes.
type fakeDashboardRepo struct {
	fornecedores *fakeFornecedorRepo
	itens        *fakeItemRepo
	pedidos      *fakePedidoRepo
	lojas        *fakeLojaRepo
}

func (r *fakeDashboardRepo) Resumo(ctx context.Context) (*repository.ResumoDashboard, error) {
	total, _ := r.itens.SumValor(ctx)
	resumo := &repository.ResumoDashboard{
		TotalItens:        int64(len(r.itens.rows)),
		TotalFornecedores: int64(len(r.fornecedores.rows)),
		TotalLojas:        int64(len(r.lojas.rows)),
		ValorTotal:        total,
	}
	for _, i := range r.itens.rows {
		if i.Quantidade <= 5 {
			resumo.ItensBaixoEstoque++
		}
	}
	for _, p := range r.pedidos.rows {
		if p.Status == entity.PedidoPendente {
			resumo.PedidosPendentes++
		}
	}
	return resumo, nil
}

func (r *fakeDashboardRepo) EstoqueBaixo(_ context.Context, limite int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.itens.rows {
		if i.Quantidade <= 10 && len(out) < limite {
			clone := *i
			out = append(out, &clone)
		}
	}
	return out, nil
}

// fakeGerador devolve um PDF de mentira sem passar pelo Maroto.
type fakeGerador struct{}

func (fakeGerador) InventarioPDF(_ context.Context, _ *usecase.RelatorioInventario) ([]byte, error) {
	return []byte("%PDF-1.7 conteudo de teste"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem da aplicação de teste
// ──────────────────────────────────────────────────────────────────────────────

type fixtures struct {
	usuarios     *fakeUsuarioRepo
	fornecedores *fakeFornecedorRepo
	itens        *fakeItemRepo
	pedidos      *fakePedidoRepo
	lojas        *fakeLojaRepo
	auditoria    *fakeAuditoriaRepo
}

// buildTestApp monta o app completo (rotas, sessão, views embutidas) sobre
// repositórios em memória.
func buildTestApp(t *testing.T) (*fiber.App, *fixtures) {
	t.Helper()

	fx := &fixtures{
		usuarios:     &fakeUsuarioRepo{rows: map[int64]*entity.Usuario{}},
		fornecedores: &fakeFornecedorRepo{rows: map[int64]*entity.Fornecedor{}},
		itens:        &fakeItemRepo{rows: map[int64]*entity.Item{}},
		pedidos:      &fakePedidoRepo{rows: map[int64]*entity.Pedido{}},
		lojas:        &fakeLojaRepo{rows: map[int64]*entity.Loja{}},
		auditoria:    &fakeAuditoriaRepo{},
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := web.NewApp("estoque-web-test", log)
	sessions := web.NewSessionStore(config.SessionConfig{
		CookieName:      testCookie,
		ExpirationHours: 1,
	})
	dashboardRepo := &fakeDashboardRepo{
		fornecedores: fx.fornecedores,
		itens:        fx.itens,
		pedidos:      fx.pedidos,
		lojas:        fx.lojas,
	}
	web.Router(app, web.RouterDeps{
		Sessions:     sessions,
		AuthUC:       usecase.NewAuthUseCase(fx.usuarios, fx.auditoria, log),
		DashboardUC:  usecase.NewDashboardUseCase(dashboardRepo),
		ItemUC:       usecase.NewItemUseCase(fx.itens, fx.auditoria, log),
		RelatorioUC:  usecase.NewRelatorioUseCase(fx.itens, fakeGerador{}),
		FornecedorUC: usecase.NewFornecedorUseCase(fx.fornecedores, fx.auditoria, log),
		PedidoUC:     usecase.NewPedidoUseCase(fx.pedidos, fx.fornecedores, fx.itens, fx.auditoria, log),
		LojaUC:       usecase.NewLojaUseCase(fx.lojas, fx.auditoria, log),
	})
	return app, fx
}

// criaUsuario grava uma conta direto no repositório fake.
func criaUsuario(t *testing.T, fx *fixtures, username, senha string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, fx.usuarios.Create(context.Background(), &entity.Usuario{
		Username:  username,
		SenhaHash: string(hash),
		Perfil:    entity.PerfilGerenteEstoque,
	}))
}

// login autentica e devolve o valor do cookie de sessão.
func login(t *testing.T, app *fiber.App, username, senha string) string {
	t.Helper()
	resp := doForm(t, app, "/login/", url.Values{
		"username": {username},
		"senha":    {senha},
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode, "login válido deve redirecionar")
	require.Equal(t, "/", resp.Header.Get("Location"))

	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c.Value
		}
	}
	t.Fatal("resposta de login sem cookie de sessão")
	return ""
}

// doGET dispara um GET com o cookie de sessão opcional.
func doGET(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doForm dispara um POST de formulário com o cookie de sessão opcional.
func doForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// bodyString lê o corpo inteiro da resposta.
func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
