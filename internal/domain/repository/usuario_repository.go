package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// UsuarioRepository define a porta de persistência para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
}
