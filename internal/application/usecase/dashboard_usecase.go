package usecase

import (
	"context"
	"fmt"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

const dashboardEstoqueBaixo = 4 // itens exibidos no widget de estoque baixo

// PainelDashboard dados da página inicial: agregados ao vivo e o widget de estoque baixo.
// Nada aqui é decorativo; tudo sai do banco a cada requisição.
type PainelDashboard struct {
	Resumo       repository.ResumoDashboard
	EstoqueBaixo []*entity.Item
}

// DashboardUseCase monta o painel da página inicial.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Painel dispara as duas consultas em paralelo e consolida o resultado.
func (uc *DashboardUseCase) Painel(ctx context.Context) (*PainelDashboard, error) {
	type resumoResult struct {
		resumo *repository.ResumoDashboard
		err    error
	}
	type baixoResult struct {
		itens []*entity.Item
		err   error
	}

	resumoCh := make(chan resumoResult, 1)
	baixoCh := make(chan baixoResult, 1)

	go func() {
		r, err := uc.repo.Resumo(ctx)
		resumoCh <- resumoResult{r, err}
	}()
	go func() {
		itens, err := uc.repo.EstoqueBaixo(ctx, dashboardEstoqueBaixo)
		baixoCh <- baixoResult{itens, err}
	}()

	resumo := <-resumoCh
	baixo := <-baixoCh

	if resumo.err != nil {
		return nil, fmt.Errorf("dashboard: resumo: %w", resumo.err)
	}
	if baixo.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", baixo.err)
	}

	return &PainelDashboard{
		Resumo:       *resumo.resumo,
		EstoqueBaixo: baixo.itens,
	}, nil
}
