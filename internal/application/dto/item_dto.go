package dto

import (
	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// ItemForm campos do formulário de item. Valor e data chegam como texto do navegador
// e são convertidos em Validar, para que erros de tipo apareçam no campo certo.
type ItemForm struct {
	Nome          string `form:"nome" validate:"required,max=255"`
	Categoria     string `form:"categoria" validate:"omitempty,max=100"`
	Localizacao   string `form:"localizacao" validate:"omitempty,max=100"`
	Quantidade    int    `form:"quantidade" validate:"gte=0"`
	DataAquisicao string `form:"data_aquisicao"`
	Status        string `form:"status" validate:"required,oneof=DISPONIVEL INDISPONIVEL BAIXA_QUANTIDADE"`
	Valor         string `form:"valor"`
}

// Validar aplica as regras de campo, incluindo as conversões de data e valor.
func (f ItemForm) Validar() FieldErrors {
	fe := Validar(f)
	if _, err := parseData(f.DataAquisicao); err != nil {
		fe.Add("data_aquisicao", "Informe uma data válida.")
	}
	if v, err := parseValor(f.Valor); err != nil {
		fe.Add("valor", "Informe um número válido.")
	} else if v.IsNegative() {
		fe.Add("valor", "Informe um valor maior ou igual a 0.")
	}
	return fe
}

// Aplicar copia os campos do formulário para a entidade. Chamar somente após Validar.
func (f ItemForm) Aplicar(dst *entity.Item) {
	dst.Nome = f.Nome
	dst.Categoria = f.Categoria
	dst.Localizacao = f.Localizacao
	dst.Quantidade = f.Quantidade
	dst.DataAquisicao, _ = parseData(f.DataAquisicao)
	dst.Status = f.Status
	dst.Valor, _ = parseValor(f.Valor)
}

// FormDoItem preenche o formulário a partir da entidade, para a tela de edição.
func FormDoItem(i *entity.Item) ItemForm {
	f := ItemForm{
		Nome:        i.Nome,
		Categoria:   i.Categoria,
		Localizacao: i.Localizacao,
		Quantidade:  i.Quantidade,
		Status:      i.Status,
		Valor:       i.Valor.StringFixed(2),
	}
	if i.DataAquisicao != nil {
		f.DataAquisicao = i.DataAquisicao.Format("2006-01-02")
	}
	return f
}
