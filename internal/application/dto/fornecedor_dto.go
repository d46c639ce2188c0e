package dto

import "github.com/estoqueti/estoque-web/internal/domain/entity"

// FornecedorForm campos do formulário de fornecedor, com as regras do esquema.
type FornecedorForm struct {
	Nome             string `form:"nome" validate:"required,max=255"`
	CNPJ             string `form:"cnpj" validate:"omitempty,max=18"`
	Contato          string `form:"contato" validate:"omitempty,max=255"`
	Email            string `form:"email" validate:"omitempty,email"`
	ProdutoPrincipal string `form:"produto_principal" validate:"omitempty,max=255"`
	Status           string `form:"status" validate:"required,oneof=ATIVO SUSPENSO ENCERRADO"`
	Observacoes      string `form:"observacoes"`
}

// Validar aplica as regras de campo e devolve os erros inline.
func (f FornecedorForm) Validar() FieldErrors { return Validar(f) }

// Aplicar copia os campos do formulário para a entidade.
func (f FornecedorForm) Aplicar(dst *entity.Fornecedor) {
	dst.Nome = f.Nome
	dst.CNPJ = f.CNPJ
	dst.Contato = f.Contato
	dst.Email = f.Email
	dst.ProdutoPrincipal = f.ProdutoPrincipal
	dst.Status = f.Status
	dst.Observacoes = f.Observacoes
}

// FormDoFornecedor preenche o formulário a partir da entidade, para a tela de edição.
func FormDoFornecedor(f *entity.Fornecedor) FornecedorForm {
	return FornecedorForm{
		Nome:             f.Nome,
		CNPJ:             f.CNPJ,
		Contato:          f.Contato,
		Email:            f.Email,
		ProdutoPrincipal: f.ProdutoPrincipal,
		Status:           f.Status,
		Observacoes:      f.Observacoes,
	}
}
