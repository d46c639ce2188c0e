package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ResumoDashboard agregados ao vivo exibidos na página inicial.
type ResumoDashboard struct {
	TotalItens        int64
	ItensBaixoEstoque int64 // quantidade <= 5
	TotalFornecedores int64
	PedidosPendentes  int64
	TotalLojas        int64
	ValorTotal        decimal.Decimal // soma de item.valor
}

// DashboardRepository consultas read-only de agregação.
type DashboardRepository interface {
	Resumo(ctx context.Context) (*ResumoDashboard, error)
	// EstoqueBaixo devolve os itens com quantidade <= 10, ordenados pela quantidade.
	EstoqueBaixo(ctx context.Context, limite int) ([]*entity.Item, error)
}
