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

// PedidoUseCase CRUD de pedidos a fornecedores. Antes de salvar, confirma que o
// fornecedor e o item escolhidos existem; id inexistente vira erro de validação
// do campo, nunca uma linha gravada.
type PedidoUseCase struct {
	repo         repository.PedidoRepository
	fornecedores repository.FornecedorRepository
	itens        repository.ItemRepository
	audit        auditTrail
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(
	repo repository.PedidoRepository,
	fornecedores repository.FornecedorRepository,
	itens repository.ItemRepository,
	auditoria repository.AuditoriaRepository,
	log *logger.Logger,
) *PedidoUseCase {
	return &PedidoUseCase{
		repo:         repo,
		fornecedores: fornecedores,
		itens:        itens,
		audit:        auditTrail{repo: auditoria, log: log},
	}
}

// Listar devolve os pedidos filtrados por status e fornecedor, mais recentes primeiro.
func (uc *PedidoUseCase) Listar(ctx context.Context, filter repository.PedidoFilter) ([]*entity.Pedido, error) {
	return uc.repo.List(ctx, filter)
}

// FornecedoresDisponiveis lista os fornecedores para o select do formulário e do filtro.
func (uc *PedidoUseCase) FornecedoresDisponiveis(ctx context.Context) ([]*entity.Fornecedor, error) {
	return uc.fornecedores.List(ctx, repository.FornecedorFilter{})
}

// ItensDisponiveis lista os itens para o select do formulário.
func (uc *PedidoUseCase) ItensDisponiveis(ctx context.Context) ([]*entity.Item, error) {
	return uc.itens.List(ctx, repository.ItemFilter{})
}

// Obter busca um pedido por ID. Devolve domain.ErrNotFound se não existir.
func (uc *PedidoUseCase) Obter(ctx context.Context, id int64) (*entity.Pedido, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// validarReferencias confirma a existência do fornecedor e do item do formulário.
func (uc *PedidoUseCase) validarReferencias(ctx context.Context, form dto.PedidoForm, fe dto.FieldErrors) (dto.FieldErrors, error) {
	f, err := uc.fornecedores.GetByID(ctx, form.FornecedorID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		fe.Add("fornecedor", "Escolha uma opção válida.")
	}
	i, err := uc.itens.GetByID(ctx, form.ItemID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		fe.Add("item", "Escolha uma opção válida.")
	}
	return fe, nil
}

// Criar valida o formulário (incluindo as referências) e persiste um pedido novo.
func (uc *PedidoUseCase) Criar(ctx context.Context, form dto.PedidoForm, usuarioID int64) (*entity.Pedido, dto.FieldErrors, error) {
	fe := form.Validar()
	if !fe.HasErrors() {
		var err error
		if fe, err = uc.validarReferencias(ctx, form, fe); err != nil {
			return nil, nil, err
		}
	}
	if fe.HasErrors() {
		return nil, fe, nil
	}
	p := &entity.Pedido{}
	form.Aplicar(p)
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("pedido #%d criado", p.ID))
	return p, nil, nil
}

// Atualizar carrega o pedido, aplica o formulário validado e persiste.
func (uc *PedidoUseCase) Atualizar(ctx context.Context, id int64, form dto.PedidoForm, usuarioID int64) (*entity.Pedido, dto.FieldErrors, error) {
	p, err := uc.Obter(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fe := form.Validar()
	if !fe.HasErrors() {
		if fe, err = uc.validarReferencias(ctx, form, fe); err != nil {
			return nil, nil, err
		}
	}
	if fe.HasErrors() {
		return nil, fe, nil
	}
	form.Aplicar(p)
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, nil, err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("pedido #%d atualizado", p.ID))
	return p, nil, nil
}

// Excluir remove um pedido por ID.
func (uc *PedidoUseCase) Excluir(ctx context.Context, id int64, usuarioID int64) error {
	if _, err := uc.Obter(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.registrar(ctx, usuarioID, fmt.Sprintf("pedido #%d excluído", id))
	return nil
}
