package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoricoAuditoria é a trilha de auditoria write-only das ações do sistema.
// UsuarioID vira nulo se a conta for removida; nenhuma tela lê esta tabela.
type HistoricoAuditoria struct {
	ID        uuid.UUID
	Data      time.Time
	Acao      string
	UsuarioID *int64
}
