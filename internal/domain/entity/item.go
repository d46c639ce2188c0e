package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Item.
const (
	ItemDisponivel      = "DISPONIVEL"
	ItemIndisponivel    = "INDISPONIVEL"
	ItemBaixaQuantidade = "BAIXA_QUANTIDADE"
)

// StatusItem lista os status aceitos.
var StatusItem = []string{ItemDisponivel, ItemIndisponivel, ItemBaixaQuantidade}

// Item representa uma unidade de estoque. Quantidade e Valor nunca são negativos.
// A exclusão é bloqueada enquanto existirem pedidos que o referenciem.
type Item struct {
	ID            int64
	Nome          string
	Categoria     string
	Localizacao   string
	Quantidade    int
	DataAquisicao *time.Time
	Status        string // DISPONIVEL, INDISPONIVEL, BAIXA_QUANTIDADE
	Valor         decimal.Decimal
}
