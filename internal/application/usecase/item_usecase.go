package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

// ItemUseCase CRUD do inventário.
type ItemUseCase struct {
	repo  repository.ItemRepository
	audit auditTrail
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(repo repository.ItemRepository, auditoria repository.AuditoriaRepository, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, audit: auditTrail{repo: auditoria, log: log}}
}

// Listar devolve os itens filtrados por busca e status, ordenados por nome.
func (uc *ItemUseCase) Listar(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	return uc.repo.List(ctx, filter)
}

// ValorTotal soma o valor de todo o inventário (sempre sobre o conjunto completo).
func (uc *ItemUseCase) ValorTotal(ctx context.Context) (decimal.Decimal, error) {
	return uc.repo.SumValor(ctx)
}

// Obter busca um item por ID. Devolve domain.ErrNotFound se não existir.
func (uc *ItemUseCase) Obter(ctx context.Context, id int64) (*entity.Item, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	return i, nil
}

// Criar valida o formulário e persiste um item novo.
func (uc *ItemUseCase) Criar(ctx context.Context, form dto.ItemForm, usuarioID int64) (*entity.Item, dto.FieldErrors, error) {
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	i := &entity.Item{}
	form.Aplicar(i)
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("item %q adicionado ao inventário", i.Nome))
	return i, nil, nil
}

// Atualizar carrega o item, aplica o formulário validado e persiste.
func (uc *ItemUseCase) Atualizar(ctx context.Context, id int64, form dto.ItemForm, usuarioID int64) (*entity.Item, dto.FieldErrors, error) {
	i, err := uc.Obter(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fe := form.Validar()
	if fe.HasErrors() {
		return nil, fe, nil
	}
	form.Aplicar(i)
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("item %q atualizado", i.Nome))
	return i, nil, nil
}

// Excluir remove o item. Pedidos dependentes bloqueiam com domain.ErrProtegido.
func (uc *ItemUseCase) Excluir(ctx context.Context, id int64, usuarioID int64) error {
	i, err := uc.Obter(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("item %q removido do inventário", i.Nome))
	return nil
}
