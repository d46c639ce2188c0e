package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

// AuthUseCase registro de contas e autenticação por username e senha.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	audit    auditTrail
}

// NewAuthUseCase constrói o caso de uso de autenticação.
func NewAuthUseCase(usuarios repository.UsuarioRepository, auditoria repository.AuditoriaRepository, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, audit: auditTrail{repo: auditoria, log: log}}
}

// Registrar cria uma conta nova: valida o formulário, faz o hash bcrypt da senha e persiste.
// Erros de validação voltam por campo; username repetido vira erro no campo username.
func (uc *AuthUseCase) Registrar(ctx context.Context, form dto.RegistroForm) (*entity.Usuario, dto.FieldErrors, error) {
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	existente, err := uc.usuarios.GetByUsername(ctx, form.Username)
	if err != nil {
		return nil, nil, err
	}
	if existente != nil {
		fe.Add("username", "Um usuário com este nome já existe.")
		return nil, fe, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Senha1), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash de senha: %w", err)
	}
	u := &entity.Usuario{
		Username:     form.Username,
		SenhaHash:    string(hash),
		NomeCompleto: form.NomeCompleto,
		Perfil:       form.Perfil,
	}
	if err := uc.usuarios.Create(ctx, u); err != nil {
		if err == domain.ErrUsernameJaExiste {
			fe.Add("username", "Um usuário com este nome já existe.")
			return nil, fe, nil
		}
		return nil, nil, err
	}
	uc.audit.registrar(ctx, u.ID, fmt.Sprintf("usuário %q registrado", u.Username))
	return u, nil, nil
}

// Login autentica por username e senha. Devolve ErrCredenciaisInvalidas sem
// distinguir conta inexistente de senha errada.
func (uc *AuthUseCase) Login(ctx context.Context, form dto.LoginForm) (*entity.Usuario, error) {
	if fe := form.Validar(); fe.HasErrors() {
		return nil, domain.ErrCredenciaisInvalidas
	}
	u, err := uc.usuarios.GetByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(form.Senha)) != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	uc.audit.registrar(ctx, u.ID, fmt.Sprintf("login de %q", u.Username))
	return u, nil
}

// Obter busca um usuário por ID (usado para recarregar a sessão).
func (uc *AuthUseCase) Obter(ctx context.Context, id int64) (*entity.Usuario, error) {
	return uc.usuarios.GetByID(ctx, id)
}
