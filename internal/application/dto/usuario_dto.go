package dto

// RegistroForm campos do formulário de criação de conta.
// As duas senhas precisam coincidir e respeitam o tamanho mínimo do login.
type RegistroForm struct {
	Username     string `form:"username" validate:"required,max=150"`
	NomeCompleto string `form:"nome_completo" validate:"omitempty,max=255"`
	Perfil       string `form:"perfil" validate:"required,oneof=GERENTE_ESTOQUE TECNICO_TI GERENTE_COMPRAS"`
	Senha1       string `form:"senha1" validate:"required,min=8"`
	Senha2       string `form:"senha2" validate:"required,eqfield=Senha1"`
}

// Validar aplica as regras de campo.
func (f RegistroForm) Validar() FieldErrors { return Validar(f) }

// LoginForm campos do formulário de login.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Senha    string `form:"senha" validate:"required"`
}

// Validar aplica as regras de campo.
func (f LoginForm) Validar() FieldErrors { return Validar(f) }
