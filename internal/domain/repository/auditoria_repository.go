package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// AuditoriaRepository grava a trilha de auditoria. Somente escrita.
type AuditoriaRepository interface {
	Registrar(ctx context.Context, h *entity.HistoricoAuditoria) error
}
