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

// LojaUseCase CRUD de lojas.
type LojaUseCase struct {
	repo  repository.LojaRepository
	audit auditTrail
}

// NewLojaUseCase constrói o caso de uso.
func NewLojaUseCase(repo repository.LojaRepository, auditoria repository.AuditoriaRepository, log *logger.Logger) *LojaUseCase {
	return &LojaUseCase{repo: repo, audit: auditTrail{repo: auditoria, log: log}}
}

// Listar devolve as lojas filtradas por busca e status, ordenadas por nome.
func (uc *LojaUseCase) Listar(ctx context.Context, filter repository.LojaFilter) ([]*entity.Loja, error) {
	return uc.repo.List(ctx, filter)
}

// Obter busca uma loja por ID. Devolve domain.ErrNotFound se não existir.
func (uc *LojaUseCase) Obter(ctx context.Context, id int64) (*entity.Loja, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

// Criar valida o formulário e persiste uma loja nova.
func (uc *LojaUseCase) Criar(ctx context.Context, form dto.LojaForm, usuarioID int64) (*entity.Loja, dto.FieldErrors, error) {
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	l := &entity.Loja{}
	form.Aplicar(l)
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("loja %q cadastrada", l.Nome))
	return l, nil, nil
}

// Atualizar carrega a loja, aplica o formulário validado e persiste.
func (uc *LojaUseCase) Atualizar(ctx context.Context, id int64, form dto.LojaForm, usuarioID int64) (*entity.Loja, dto.FieldErrors, error) {
	l, err := uc.Obter(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	form.Aplicar(l)
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("loja %q atualizada", l.Nome))
	return l, nil, nil
}

// Excluir remove uma loja por ID.
func (uc *LojaUseCase) Excluir(ctx context.Context, id int64, usuarioID int64) error {
	l, err := uc.Obter(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("loja %q removida", l.Nome))
	return nil
}
