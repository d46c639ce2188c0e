package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// LojaFilter filtros da listagem de lojas.
type LojaFilter struct {
	Busca  string // substring case-insensitive sobre nome, responsável ou cidade
	Status string // igualdade exata
}

// LojaRepository define a porta de persistência para Loja.
type LojaRepository interface {
	Create(ctx context.Context, l *entity.Loja) error
	GetByID(ctx context.Context, id int64) (*entity.Loja, error)
	List(ctx context.Context, filter LojaFilter) ([]*entity.Loja, error)
	Update(ctx context.Context, l *entity.Loja) error
	Delete(ctx context.Context, id int64) error
}
