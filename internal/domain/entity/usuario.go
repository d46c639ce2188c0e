package entity

import "time"

// Perfis válidos para Usuario.
const (
	PerfilGerenteEstoque = "GERENTE_ESTOQUE"
	PerfilTecnicoTI      = "TECNICO_TI"
	PerfilGerenteCompras = "GERENTE_COMPRAS"
)

// Perfis lista os perfis aceitos, na ordem exibida no formulário de registro.
var Perfis = []string{PerfilGerenteEstoque, PerfilTecnicoTI, PerfilGerenteCompras}

// Usuario representa uma conta do sistema. Autentica por username e senha (hash bcrypt).
type Usuario struct {
	ID           int64
	Username     string
	SenhaHash    string // bcrypt, nunca em claro depois de persistido
	NomeCompleto string
	Perfil       string // GERENTE_ESTOQUE, TECNICO_TI, GERENTE_COMPRAS
	CriadoEm     time.Time
}
