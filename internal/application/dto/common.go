package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors mapeia o nome do campo do formulário para a mensagem de erro inline.
type FieldErrors map[string]string

// HasErrors indica se há pelo menos um erro de campo.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

// Add registra uma mensagem para o campo, sem sobrescrever a primeira.
func (fe FieldErrors) Add(campo, msg string) {
	if _, ok := fe[campo]; !ok {
		fe[campo] = msg
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Os erros são reportados pelo nome do campo no formulário, não pelo nome em Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validar roda o validator sobre o formulário e traduz os erros para mensagens por campo.
func Validar(form any) FieldErrors {
	fe := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return fe
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add("__all__", "Dados inválidos.")
		return fe
	}
	for _, e := range verrs {
		fe.Add(e.Field(), mensagem(e))
	}
	return fe
}

func mensagem(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "max":
		return fmt.Sprintf("Garanta que este valor tenha no máximo %s caracteres.", e.Param())
	case "min":
		return fmt.Sprintf("Garanta que este valor tenha no mínimo %s caracteres.", e.Param())
	case "email":
		return "Informe um endereço de email válido."
	case "oneof":
		return "Escolha uma opção válida."
	case "gte":
		return fmt.Sprintf("Informe um valor maior ou igual a %s.", e.Param())
	case "eqfield":
		return "Os dois campos de senha não correspondem."
	}
	return "Valor inválido."
}

// parseData converte "AAAA-MM-DD" (input type=date) em *time.Time; vazio vira nil.
func parseData(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseValor converte o valor monetário do formulário; vazio vira zero.
func parseValor(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	// Aceita vírgula decimal, comum em entrada pt-BR.
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
