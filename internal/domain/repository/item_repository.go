package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// ItemFilter filtros da listagem do inventário.
type ItemFilter struct {
	Busca  string // substring case-insensitive sobre o nome
	Status string // igualdade exata
}

// ItemRepository define a porta de persistência para Item.
type ItemRepository interface {
	Create(ctx context.Context, i *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	Update(ctx context.Context, i *entity.Item) error
	// Delete devolve domain.ErrProtegido se existirem pedidos referenciando o item.
	Delete(ctx context.Context, id int64) error
	// SumValor soma o valor de todos os itens do inventário (conjunto completo, sem filtro).
	SumValor(ctx context.Context) (decimal.Decimal, error)
}
