package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("registro não encontrado")
	ErrDuplicate            = errors.New("registro duplicado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrProtegido            = errors.New("registro referenciado por pedidos e não pode ser excluído")
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrUsernameJaExiste     = errors.New("nome de usuário já cadastrado")
)
