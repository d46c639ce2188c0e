package dto

import "github.com/estoqueti/estoque-web/internal/domain/entity"

// PedidoForm campos do formulário de pedido. A existência de fornecedor e item
// é checada no caso de uso, antes de salvar.
type PedidoForm struct {
	FornecedorID    int64  `form:"fornecedor" validate:"required,gt=0"`
	ItemID          int64  `form:"item" validate:"required,gt=0"`
	Quantidade      int    `form:"quantidade" validate:"required,gte=1"`
	Status          string `form:"status" validate:"required,oneof=PENDENTE EM_TRANSITO ENTREGUE CANCELADO"`
	EntregaPrevista string `form:"entrega_prevista"`
	Observacoes     string `form:"observacoes"`
}

// Validar aplica as regras de campo e a conversão da data de entrega.
func (f PedidoForm) Validar() FieldErrors {
	fe := Validar(f)
	if _, err := parseData(f.EntregaPrevista); err != nil {
		fe.Add("entrega_prevista", "Informe uma data válida.")
	}
	return fe
}

// Aplicar copia os campos do formulário para a entidade. Chamar somente após Validar.
func (f PedidoForm) Aplicar(dst *entity.Pedido) {
	dst.FornecedorID = f.FornecedorID
	dst.ItemID = f.ItemID
	dst.Quantidade = f.Quantidade
	dst.Status = f.Status
	dst.EntregaPrevista, _ = parseData(f.EntregaPrevista)
	dst.Observacoes = f.Observacoes
}

// FormDoPedido preenche o formulário a partir da entidade, para a tela de edição.
func FormDoPedido(p *entity.Pedido) PedidoForm {
	f := PedidoForm{
		FornecedorID: p.FornecedorID,
		ItemID:       p.ItemID,
		Quantidade:   p.Quantidade,
		Status:       p.Status,
		Observacoes:  p.Observacoes,
	}
	if p.EntregaPrevista != nil {
		f.EntregaPrevista = p.EntregaPrevista.Format("2006-01-02")
	}
	return f
}
