package entity

import "time"

// Status válidos para Loja.
const (
	LojaAtiva     = "ATIVA"
	LojaEmReforma = "EM_REFORMA"
	LojaFechada   = "FECHADA"
)

// StatusLoja lista os status aceitos.
var StatusLoja = []string{LojaAtiva, LojaEmReforma, LojaFechada}

// Loja é uma unidade física independente; não possui chaves para o estoque.
type Loja struct {
	ID           int64
	Nome         string
	Responsavel  string
	Telefone     string
	Email        string
	Endereco     string
	Cidade       string
	Estado       string
	CEP          string
	DataAbertura *time.Time
	Status       string // ATIVA, EM_REFORMA, FECHADA
	Observacoes  string
}
