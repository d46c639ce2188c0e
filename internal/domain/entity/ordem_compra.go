package entity

import "time"

// OrdemCompra agrupa quantidades de itens em uma única compra.
// Os itens entram pela tabela de junção ItemOrdem.
type OrdemCompra struct {
	ID     int64
	Data   time.Time
	Status string // default PENDENTE
	Itens  []ItemOrdem
}

// ItemOrdem é a linha resolvida da relação OrdemCompra x Item.
// Cascateia com qualquer um dos pais.
type ItemOrdem struct {
	ID            int64
	OrdemCompraID int64
	ItemID        int64
	Quantidade    int
}
