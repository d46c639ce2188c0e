package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários. Aceita pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário e preenche o ID gerado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (username, senha_hash, nome_completo, perfil)
		VALUES ($1, $2, $3, $4)
		RETURNING id, criado_em`
	err := r.q.QueryRow(ctx, query, u.Username, u.SenhaHash, u.NomeCompleto, u.Perfil).
		Scan(&u.ID, &u.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID. Devolve nil se não existir.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByUsername busca um usuário pelo username. Devolve nil se não existir.
func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *UsuarioRepo) get(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	query := `SELECT id, username, senha_hash, nome_completo, perfil, criado_em FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.SenhaHash, &u.NomeCompleto, &u.Perfil, &u.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
