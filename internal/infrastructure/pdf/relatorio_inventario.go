// Package pdf implementa o relatório imprimível do inventário.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + data de geração                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Nome | Categoria | Localização | Qtd | Status | R$  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: Total de itens listados / Valor total do inventário │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 31, Green: 58, Blue: 95}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// RelatorioInventarioMaroto implementa usecase.RelatorioGenerator usando Maroto v2.
type RelatorioInventarioMaroto struct{}

// NewRelatorioInventarioMaroto constrói o gerador.
func NewRelatorioInventarioMaroto() *RelatorioInventarioMaroto {
	return &RelatorioInventarioMaroto{}
}

var _ usecase.RelatorioGenerator = (*RelatorioInventarioMaroto)(nil)

// InventarioPDF gera o PDF e devolve seus bytes.
func (g *RelatorioInventarioMaroto) InventarioPDF(_ context.Context, rel *usecase.RelatorioInventario) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Inventário", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(tabelaHeaderRow())
	for _, r := range tabelaItemRows(rel.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totaisRow(rel))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(rel *usecase.RelatorioInventario) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE INVENTÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: corPrimaria, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+rel.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: corCinza, Top: 4,
			}),
		),
	)
}

func tabelaHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1}
	return row.New(7).Add(
		col.New(4).Add(text.New("Nome", estilo)),
		col.New(2).Add(text.New("Categoria", estilo)),
		col.New(2).Add(text.New("Localização", estilo)),
		col.New(1).Add(text.New("Qtd", textoDireita(estilo))),
		col.New(2).Add(text.New("Status", estilo)),
		col.New(1).Add(text.New("Valor", textoDireita(estilo))),
	)
}

func tabelaItemRows(itens []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(itens))
	estilo := props.Text{Size: 8, Top: 1}
	for _, i := range itens {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(i.Nome, estilo)),
			col.New(2).Add(text.New(i.Categoria, estilo)),
			col.New(2).Add(text.New(i.Localizacao, estilo)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", i.Quantidade), textoDireita(estilo))),
			col.New(2).Add(text.New(rotuloStatus(i.Status), estilo)),
			col.New(1).Add(text.New(i.Valor.StringFixed(2), textoDireita(estilo))),
		))
	}
	return rows
}

func totaisRow(rel *usecase.RelatorioInventario) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d itens listados", len(rel.Itens)), props.Text{
				Size: 9, Color: corCinza, Top: 3,
			}),
		),
		col.New(4).Add(
			text.New("Valor total do inventário: R$ "+rel.ValorTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func textoDireita(base props.Text) props.Text {
	base.Align = align.Right
	return base
}

func rotuloStatus(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
