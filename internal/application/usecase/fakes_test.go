package usecase_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória das portas de persistência
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type fakeUsuarioRepo struct {
	seq  int64
	rows map[int64]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{rows: map[int64]*entity.Usuario{}}
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
	deleteErr error // devolvido por Delete quando definido
}

func newFakeFornecedorRepo() *fakeFornecedorRepo {
	return &fakeFornecedorRepo{rows: map[int64]*entity.Fornecedor{}}
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

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{rows: map[int64]*entity.Item{}}
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

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{rows: map[int64]*entity.Pedido{}}
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

type fakeAuditoriaRepo struct {
	registros []*entity.HistoricoAuditoria
}

func (r *fakeAuditoriaRepo) Registrar(_ context.Context, h *entity.HistoricoAuditoria) error {
	r.registros = append(r.registros, h)
	return nil
}
