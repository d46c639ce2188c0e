package dto

import "github.com/estoqueti/estoque-web/internal/domain/entity"

// LojaForm campos do formulário de loja.
type LojaForm struct {
	Nome         string `form:"nome" validate:"required,max=255"`
	Responsavel  string `form:"responsavel" validate:"omitempty,max=255"`
	Telefone     string `form:"telefone" validate:"omitempty,max=20"`
	Email        string `form:"email" validate:"omitempty,email"`
	Endereco     string `form:"endereco" validate:"omitempty,max=255"`
	Cidade       string `form:"cidade" validate:"omitempty,max=100"`
	Estado       string `form:"estado" validate:"omitempty,max=2"`
	CEP          string `form:"cep" validate:"omitempty,max=9"`
	DataAbertura string `form:"data_abertura"`
	Status       string `form:"status" validate:"required,oneof=ATIVA EM_REFORMA FECHADA"`
	Observacoes  string `form:"observacoes"`
}

// Validar aplica as regras de campo e a conversão da data de abertura.
func (f LojaForm) Validar() FieldErrors {
	fe := Validar(f)
	if _, err := parseData(f.DataAbertura); err != nil {
		fe.Add("data_abertura", "Informe uma data válida.")
	}
	return fe
}

// Aplicar copia os campos do formulário para a entidade. Chamar somente após Validar.
func (f LojaForm) Aplicar(dst *entity.Loja) {
	dst.Nome = f.Nome
	dst.Responsavel = f.Responsavel
	dst.Telefone = f.Telefone
	dst.Email = f.Email
	dst.Endereco = f.Endereco
	dst.Cidade = f.Cidade
	dst.Estado = f.Estado
	dst.CEP = f.CEP
	dst.DataAbertura, _ = parseData(f.DataAbertura)
	dst.Status = f.Status
	dst.Observacoes = f.Observacoes
}

// FormDaLoja preenche o formulário a partir da entidade, para a tela de edição.
func FormDaLoja(l *entity.Loja) LojaForm {
	f := LojaForm{
		Nome:        l.Nome,
		Responsavel: l.Responsavel,
		Telefone:    l.Telefone,
		Email:       l.Email,
		Endereco:    l.Endereco,
		Cidade:      l.Cidade,
		Estado:      l.Estado,
		CEP:         l.CEP,
		Status:      l.Status,
		Observacoes: l.Observacoes,
	}
	if l.DataAbertura != nil {
		f.DataAbertura = l.DataAbertura.Format("2006-01-02")
	}
	return f
}
