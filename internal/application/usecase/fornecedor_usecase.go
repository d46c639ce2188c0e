package usecase

import (
	"context"
	"fmt"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	repo  repository.FornecedorRepository
	audit auditTrail
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository, auditoria repository.AuditoriaRepository, log *logger.Logger) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo, audit: auditTrail{repo: auditoria, log: log}}
}

// Listar devolve os fornecedores filtrados por busca e status, ordenados por nome.
func (uc *FornecedorUseCase) Listar(ctx context.Context, filter repository.FornecedorFilter) ([]*entity.Fornecedor, error) {
	return uc.repo.List(ctx, filter)
}

// Obter busca um fornecedor por ID. Devolve domain.ErrNotFound se não existir.
func (uc *FornecedorUseCase) Obter(ctx context.Context, id int64) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// Criar valida o formulário e persiste um fornecedor novo. CNPJ duplicado vira erro do campo.
func (uc *FornecedorUseCase) Criar(ctx context.Context, form dto.FornecedorForm, usuarioID int64) (*entity.Fornecedor, dto.FieldErrors, error) {
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	f := &entity.Fornecedor{}
	form.Aplicar(f)
	if err := uc.repo.Create(ctx, f); err != nil {
		if err == domain.ErrDuplicate {
			fe.Add("cnpj", "Fornecedor com este CNPJ já existe.")
			return nil, fe, nil
		}
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("fornecedor %q criado", f.Nome))
	return f, nil, nil
}

// Atualizar carrega o fornecedor, aplica o formulário validado e persiste.
func (uc *FornecedorUseCase) Atualizar(ctx context.Context, id int64, form dto.FornecedorForm, usuarioID int64) (*entity.Fornecedor, dto.FieldErrors, error) {
	f, err := uc.Obter(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	form.Aplicar(f)
	if err := uc.repo.Update(ctx, f); err != nil {
		if err == domain.ErrDuplicate {
			fe.Add("cnpj", "Fornecedor com este CNPJ já existe.")
			return nil, fe, nil
		}
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("fornecedor %q atualizado", f.Nome))
	return f, nil, nil
}

// Excluir remove o fornecedor. Pedidos dependentes bloqueiam com domain.ErrProtegido.
func (uc *FornecedorUseCase) Excluir(ctx context.Context, id int64, usuarioID int64) error {
	f, err := uc.Obter(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("fornecedor %q excluído", f.Nome))
	return nil
}
