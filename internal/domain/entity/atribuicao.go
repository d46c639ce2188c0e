package entity

import "time"

// Atribuicao registra a entrega de um Item a um Funcionario.
// É removida em cascata quando o item ou o funcionário é excluído.
type Atribuicao struct {
	ID            int64
	ItemID        int64
	FuncionarioID int64
	Data          time.Time
	Status        string // default ATIVO
}
