package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// FornecedorFilter filtros da listagem de fornecedores.
type FornecedorFilter struct {
	Busca  string // substring case-insensitive sobre o nome
	Status string // igualdade exata
}

// FornecedorRepository define a porta de persistência para Fornecedor.
type FornecedorRepository interface {
	Create(ctx context.Context, f *entity.Fornecedor) error
	GetByID(ctx context.Context, id int64) (*entity.Fornecedor, error)
	List(ctx context.Context, filter FornecedorFilter) ([]*entity.Fornecedor, error)
	Update(ctx context.Context, f *entity.Fornecedor) error
	// Delete devolve domain.ErrProtegido se existirem pedidos referenciando o fornecedor.
	Delete(ctx context.Context, id int64) error
}
