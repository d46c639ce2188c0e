// Package web serve as páginas HTML da aplicação: engine de templates,
// sessão de login, handlers de CRUD e o registro de rotas.
package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/estoqueti/estoque-web/pkg/logger"
	"github.com/estoqueti/estoque-web/pkg/metrics"
	"github.com/estoqueti/estoque-web/web/templates"
)

// Rótulos que a forma automática (Title case) não acerta.
var rotulos = map[string]string{
	"EM_TRANSITO":     "Em Trânsito",
	"DISPONIVEL":      "Disponível",
	"INDISPONIVEL":    "Indisponível",
	"GERENTE_ESTOQUE": "Gerente de Estoque",
	"TECNICO_TI":      "Técnico de TI",
	"GERENTE_COMPRAS": "Gerente de Compras",
}

// NewEngine monta o engine de views com as funções usadas pelas páginas.
// Os templates vêm embutidos no binário.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")

	ptBR := message.NewPrinter(language.BrazilianPortuguese)
	titulo := cases.Title(language.BrazilianPortuguese)

	engine.AddFunc("formatData", func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02/01/2006")
	})
	engine.AddFunc("formatDataHora", func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	})
	engine.AddFunc("formatMoeda", func(v decimal.Decimal) string {
		return ptBR.Sprintf("R$ %.2f", v.InexactFloat64())
	})
	engine.AddFunc("rotulo", func(s string) string {
		if r, ok := rotulos[s]; ok {
			return r
		}
		return titulo.String(strings.ReplaceAll(s, "_", " "))
	})
	engine.AddFunc("rotuloPerfil", func(s string) string {
		if r, ok := rotulos[s]; ok {
			return r
		}
		return s
	})
	return engine
}

// NewApp cria o app Fiber com views, recuperação de pânico e página de erro HTML.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		Views:                 NewEngine(),
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(metricsMiddleware())
	return app
}

// errorHandler converte qualquer erro não tratado em uma página HTML de erro.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("erro não tratado")
		}

		msg := "Ocorreu um erro inesperado. Tente novamente."
		if code == fiber.StatusNotFound {
			msg = "A página que você procura não existe."
		}
		return c.Status(code).Render("pages/error", fiber.Map{
			"Titulo":   "Erro",
			"Codigo":   code,
			"Mensagem": msg,
		}, "layouts/base")
	}
}

// metricsMiddleware registra contagem e duração por rota.
func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			status = ferr.Code
		}
		rota := c.Route().Path
		metrics.RecordRequest(c.Method(), rota, status, time.Since(inicio))
		return err
	}
}
