// Popula o banco com dados de demonstração: conta admin, fornecedores, itens,
// funcionários com atribuições e uma ordem de compra. Idempotente no que
// importa: não recria o admin se ele já existir.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/infrastructure/postgres"
	"github.com/estoqueti/estoque-web/pkg/config"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}

	usuarios := postgres.NewUsuarioRepository(pool)
	fornecedores := postgres.NewFornecedorRepository(pool)
	itens := postgres.NewItemRepository(pool)
	funcionarios := postgres.NewFuncionarioRepository(pool)
	atribuicoes := postgres.NewAtribuicaoRepository(pool)
	ordens := postgres.NewOrdemCompraRepository(pool)

	// Conta administrativa inicial
	admin, err := usuarios.GetByUsername(ctx, "admin")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash da senha do admin")
		}
		admin = &entity.Usuario{
			Username:     "admin",
			SenhaHash:    string(hash),
			NomeCompleto: "Administrador do Sistema",
			Perfil:       entity.PerfilGerenteEstoque,
		}
		if err := usuarios.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("criar admin")
		}
		log.Info().Str("username", admin.Username).Msg("conta admin criada")
	} else {
		log.Info().Msg("conta admin já existe, seguindo")
	}

	// Fornecedores de exemplo
	fornecedoresSeed := []*entity.Fornecedor{
		{Nome: "TechSupply Distribuidora", CNPJ: "12.345.678/0001-90", Contato: "(11) 4002-8922",
			Email: "vendas@techsupply.com.br", ProdutoPrincipal: "Notebooks", Status: entity.FornecedorAtivo},
		{Nome: "InfoParts Comércio de Periféricos", CNPJ: "98.765.432/0001-10", Contato: "(21) 3003-1177",
			Email: "contato@infoparts.com.br", ProdutoPrincipal: "Periféricos", Status: entity.FornecedorAtivo},
		{Nome: "RedeCabo Telecom", Contato: "(31) 2102-5544",
			Email: "comercial@redecabo.com.br", ProdutoPrincipal: "Cabeamento", Status: entity.FornecedorSuspenso},
	}
	for _, f := range fornecedoresSeed {
		if err := fornecedores.Create(ctx, f); err != nil {
			log.Warn().Err(err).Str("fornecedor", f.Nome).Msg("seed de fornecedor ignorado")
		}
	}

	// Itens de exemplo
	aquisicao := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	itensSeed := []*entity.Item{
		{Nome: "Notebook Dell Latitude 5440", Categoria: "Computadores", Localizacao: "Almoxarifado A",
			Quantidade: 12, DataAquisicao: &aquisicao, Status: entity.ItemDisponivel,
			Valor: decimal.NewFromFloat(5899.90)},
		{Nome: "Monitor LG 24 polegadas", Categoria: "Monitores", Localizacao: "Almoxarifado A",
			Quantidade: 30, Status: entity.ItemDisponivel, Valor: decimal.NewFromFloat(899.00)},
		{Nome: "Teclado ABNT2 USB", Categoria: "Periféricos", Localizacao: "Almoxarifado B",
			Quantidade: 4, Status: entity.ItemBaixaQuantidade, Valor: decimal.NewFromFloat(79.90)},
		{Nome: "Switch 24 portas gigabit", Categoria: "Redes", Localizacao: "CPD",
			Quantidade: 0, Status: entity.ItemIndisponivel, Valor: decimal.NewFromFloat(1450.00)},
	}
	for _, i := range itensSeed {
		if err := itens.Create(ctx, i); err != nil {
			log.Warn().Err(err).Str("item", i.Nome).Msg("seed de item ignorado")
		}
	}

	// Funcionários e atribuições
	funcionariosSeed := []*entity.Funcionario{
		{Nome: "Carla Mendes", Setor: "Financeiro"},
		{Nome: "Rafael Souza", Setor: "Suporte"},
	}
	for _, f := range funcionariosSeed {
		if err := funcionarios.Create(ctx, f); err != nil {
			log.Warn().Err(err).Str("funcionario", f.Nome).Msg("seed de funcionário ignorado")
		}
	}
	if funcionariosSeed[0].ID != 0 && itensSeed[0].ID != 0 {
		atr := &entity.Atribuicao{
			ItemID:        itensSeed[0].ID,
			FuncionarioID: funcionariosSeed[0].ID,
			Status:        "ATIVO",
		}
		if err := atribuicoes.Create(ctx, atr); err != nil {
			log.Warn().Err(err).Msg("seed de atribuição ignorado")
		}
	}

	// Uma ordem de compra com duas linhas
	if itensSeed[2].ID != 0 && itensSeed[3].ID != 0 {
		ordem := &entity.OrdemCompra{
			Status: "PENDENTE",
			Itens: []entity.ItemOrdem{
				{ItemID: itensSeed[2].ID, Quantidade: 20},
				{ItemID: itensSeed[3].ID, Quantidade: 2},
			},
		}
		if err := ordens.Create(ctx, ordem); err != nil {
			log.Warn().Err(err).Msg("seed de ordem de compra ignorado")
		}
	}

	log.Info().Msg("seed concluído")
}
