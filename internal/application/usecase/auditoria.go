package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

// auditTrail grava a trilha de auditoria em melhor esforço: falha de escrita
// é logada e nunca bloqueia a operação que a originou.
type auditTrail struct {
	repo repository.AuditoriaRepository
	log  *logger.Logger
}

func (a auditTrail) registrar(ctx context.Context, usuarioID int64, acao string) {
	if a.repo == nil {
		return
	}
	h := &entity.HistoricoAuditoria{ID: uuid.New(), Acao: acao}
	if usuarioID > 0 {
		h.UsuarioID = &usuarioID
	}
	if err := a.repo.Registrar(ctx, h); err != nil && a.log != nil {
		a.log.Warn().Err(err).Str("acao", acao).Msg("falha ao gravar auditoria")
	}
}
