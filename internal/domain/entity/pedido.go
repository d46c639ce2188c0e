package entity

import "time"

// Status válidos para Pedido.
const (
	PedidoPendente   = "PENDENTE"
	PedidoEmTransito = "EM_TRANSITO"
	PedidoEntregue   = "ENTREGUE"
	PedidoCancelado  = "CANCELADO"
)

// StatusPedido lista os status aceitos.
var StatusPedido = []string{PedidoPendente, PedidoEmTransito, PedidoEntregue, PedidoCancelado}

// Pedido é uma encomenda de quantidades de um Item a um Fornecedor.
// Fornecedor e Item são protegidos contra exclusão enquanto o pedido existir.
type Pedido struct {
	ID              int64
	FornecedorID    int64
	ItemID          int64
	Quantidade      int // sempre >= 1
	Status          string
	CriadoEm        time.Time
	EntregaPrevista *time.Time
	Observacoes     string

	// Preenchidos nas listagens (join com fornecedor e item).
	FornecedorNome string
	ItemNome       string
}
