package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

func fornecedorValido() dto.FornecedorForm {
	return dto.FornecedorForm{
		Nome:   "TechSupply",
		CNPJ:   "12.345.678/0001-90",
		Email:  "vendas@techsupply.com.br",
		Status: entity.FornecedorAtivo,
	}
}

func TestFornecedorCriar_PersisteERegistraAuditoria(t *testing.T) {
	repo := newFakeFornecedorRepo()
	audit := &fakeAuditoriaRepo{}
	uc := usecase.NewFornecedorUseCase(repo, audit, testLogger())

	f, fe, err := uc.Criar(context.Background(), fornecedorValido(), 7)
	require.NoError(t, err)
	require.False(t, fe.HasErrors())
	require.NotNil(t, f)

	assert.Len(t, repo.rows, 1)
	require.Len(t, audit.registros, 1, "toda mutação bem-sucedida gera trilha de auditoria")
	require.NotNil(t, audit.registros[0].UsuarioID)
	assert.EqualValues(t, 7, *audit.registros[0].UsuarioID)
}

func TestFornecedorCriar_FormularioInvalidoNaoPersiste(t *testing.T) {
	repo := newFakeFornecedorRepo()
	uc := usecase.NewFornecedorUseCase(repo, &fakeAuditoriaRepo{}, testLogger())

	form := fornecedorValido()
	form.Nome = ""
	form.Email = "nao-e-email"
	f, fe, err := uc.Criar(context.Background(), form, 1)
	require.NoError(t, err)

	assert.Nil(t, f)
	assert.Equal(t, "Este campo é obrigatório.", fe["nome"])
	assert.Equal(t, "Informe um endereço de email válido.", fe["email"])
	assert.Empty(t, repo.rows, "validação falhou, nada pode ser gravado")
}

func TestFornecedorAtualizar_IDInexistenteViraNotFound(t *testing.T) {
	uc := usecase.NewFornecedorUseCase(newFakeFornecedorRepo(), &fakeAuditoriaRepo{}, testLogger())

	_, _, err := uc.Atualizar(context.Background(), 42, fornecedorValido(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFornecedorExcluir_ProtegidoPorPedidosMantemALinha(t *testing.T) {
	repo := newFakeFornecedorRepo()
	uc := usecase.NewFornecedorUseCase(repo, &fakeAuditoriaRepo{}, testLogger())

	f, _, err := uc.Criar(context.Background(), fornecedorValido(), 1)
	require.NoError(t, err)
	repo.deleteErr = domain.ErrProtegido

	err = uc.Excluir(context.Background(), f.ID, 1)
	assert.ErrorIs(t, err, domain.ErrProtegido)
	assert.Len(t, repo.rows, 1, "a exclusão bloqueada não remove a linha")
}

func TestFornecedorListar_RepassaOFiltro(t *testing.T) {
	repo := newFakeFornecedorRepo()
	uc := usecase.NewFornecedorUseCase(repo, &fakeAuditoriaRepo{}, testLogger())

	ctx := context.Background()
	for _, form := range []dto.FornecedorForm{
		{Nome: "TechSupply", Status: entity.FornecedorAtivo},
		{Nome: "InfoParts", Status: entity.FornecedorAtivo},
		{Nome: "RedeCabo", Status: entity.FornecedorSuspenso},
	} {
		_, fe, err := uc.Criar(ctx, form, 1)
		require.NoError(t, err)
		require.False(t, fe.HasErrors())
	}

	ativos, err := uc.Listar(ctx, repository.FornecedorFilter{Status: entity.FornecedorAtivo})
	require.NoError(t, err)
	assert.Len(t, ativos, 2)

	tech, err := uc.Listar(ctx, repository.FornecedorFilter{Busca: "tech"})
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "TechSupply", tech[0].Nome)
}
