package postgres

import (
	"context"
	"fmt"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo grava a trilha de auditoria. Nenhuma tela lê esta tabela.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository constrói o adaptador da trilha de auditoria.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Registrar insere uma entrada de auditoria.
func (r *AuditoriaRepo) Registrar(ctx context.Context, h *entity.HistoricoAuditoria) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO historico_auditoria (id, acao, usuario_id) VALUES ($1, $2, $3)`,
		h.ID, h.Acao, h.UsuarioID,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}
