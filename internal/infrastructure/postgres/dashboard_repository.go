package postgres

import (
	"context"
	"fmt"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de agregação para a página inicial.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador de agregados do dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Resumo devolve contagens e somas ao vivo em uma única consulta.
func (r *DashboardRepo) Resumo(ctx context.Context) (*repository.ResumoDashboard, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM itens)                                AS total_itens,
	    (SELECT COUNT(*) FROM itens WHERE quantidade <= 5)          AS itens_baixo_estoque,
	    (SELECT COUNT(*) FROM fornecedores)                         AS total_fornecedores,
	    (SELECT COUNT(*) FROM pedidos WHERE status = 'PENDENTE')    AS pedidos_pendentes,
	    (SELECT COUNT(*) FROM lojas)                                AS total_lojas,
	    (SELECT COALESCE(SUM(valor), 0) FROM itens)                 AS valor_total`
	var res repository.ResumoDashboard
	err := r.q.QueryRow(ctx, query).Scan(
		&res.TotalItens, &res.ItensBaixoEstoque, &res.TotalFornecedores,
		&res.PedidosPendentes, &res.TotalLojas, &res.ValorTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Resumo: %w", err)
	}
	return &res, nil
}

// EstoqueBaixo devolve os itens com quantidade <= 10 ordenados pela quantidade.
func (r *DashboardRepo) EstoqueBaixo(ctx context.Context, limite int) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, categoria, localizacao, quantidade, data_aquisicao, status, valor
		FROM itens WHERE quantidade <= 10
		ORDER BY quantidade
		LIMIT $1`, limite)
	if err != nil {
		return nil, fmt.Errorf("dashboard.EstoqueBaixo: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Nome, &i.Categoria, &i.Localizacao,
			&i.Quantidade, &i.DataAquisicao, &i.Status, &i.Valor); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
