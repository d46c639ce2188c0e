package entity

// Status válidos para Fornecedor.
const (
	FornecedorAtivo     = "ATIVO"
	FornecedorSuspenso  = "SUSPENSO"
	FornecedorEncerrado = "ENCERRADO"
)

// StatusFornecedor lista os status aceitos.
var StatusFornecedor = []string{FornecedorAtivo, FornecedorSuspenso, FornecedorEncerrado}

// Fornecedor representa um fornecedor de itens. CNPJ é único quando informado.
// A exclusão é bloqueada enquanto existirem pedidos que o referenciem.
type Fornecedor struct {
	ID               int64
	Nome             string
	CNPJ             string // opcional; único quando não vazio
	Contato          string
	Email            string
	ProdutoPrincipal string
	Status           string // ATIVO, SUSPENSO, ENCERRADO
	Observacoes      string
}
