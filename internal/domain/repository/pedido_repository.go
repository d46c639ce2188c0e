package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// PedidoFilter filtros da listagem de pedidos.
type PedidoFilter struct {
	Status       string // igualdade exata
	FornecedorID int64  // 0 = todos
}

// PedidoRepository define a porta de persistência para Pedido.
// As listagens vêm com FornecedorNome e ItemNome preenchidos (join).
type PedidoRepository interface {
	Create(ctx context.Context, p *entity.Pedido) error
	GetByID(ctx context.Context, id int64) (*entity.Pedido, error)
	List(ctx context.Context, filter PedidoFilter) ([]*entity.Pedido, error)
	Update(ctx context.Context, p *entity.Pedido) error
	Delete(ctx context.Context, id int64) error
}
