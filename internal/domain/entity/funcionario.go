package entity

// Funcionario é o destinatário de atribuições de itens.
type Funcionario struct {
	ID    int64
	Nome  string
	Setor string
}
