package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

// RelatorioInventario dados do relatório imprimível do inventário.
type RelatorioInventario struct {
	Itens      []*entity.Item
	ValorTotal decimal.Decimal // soma do inventário completo, ignora o filtro
	GeradoEm   time.Time
}

// RelatorioGenerator porta de renderização do relatório em PDF.
type RelatorioGenerator interface {
	InventarioPDF(ctx context.Context, rel *RelatorioInventario) ([]byte, error)
}

// RelatorioUseCase monta o relatório do inventário com os mesmos filtros da listagem.
type RelatorioUseCase struct {
	itens   repository.ItemRepository
	gerador RelatorioGenerator
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(itens repository.ItemRepository, gerador RelatorioGenerator) *RelatorioUseCase {
	return &RelatorioUseCase{itens: itens, gerador: gerador}
}

// InventarioPDF gera o PDF do inventário filtrado.
func (uc *RelatorioUseCase) InventarioPDF(ctx context.Context, filter repository.ItemFilter) ([]byte, error) {
	itens, err := uc.itens.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar itens: %w", err)
	}
	total, err := uc.itens.SumValor(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: valor total: %w", err)
	}
	return uc.gerador.InventarioPDF(ctx, &RelatorioInventario{
		Itens:      itens,
		ValorTotal: total,
		GeradoEm:   time.Now(),
	})
}
