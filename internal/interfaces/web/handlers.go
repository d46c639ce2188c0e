package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/domain"
)

// Níveis de flash exibidos pelo layout.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

// base utilitários compartilhados pelos handlers de página.
type base struct {
	sessions *session.Store
}

// render injeta o usuário logado e o flash pendente e renderiza com o layout base.
func (b base) render(c *fiber.Ctx, page string, data fiber.Map) error {
	data["UsuarioNome"] = usuarioNome(c)
	if sess, err := b.sessions.Get(c); err == nil {
		if msg, ok := sess.Get(sessFlashMsg).(string); ok && msg != "" {
			data["FlashMensagem"] = msg
			if nivel, ok := sess.Get(sessFlashNivel).(string); ok {
				data["FlashNivel"] = nivel
			}
			sess.Delete(sessFlashMsg)
			sess.Delete(sessFlashNivel)
			_ = sess.Save()
		}
	}
	return c.Render(page, data, "layouts/base")
}

// flash grava a mensagem exibida uma única vez na próxima página renderizada.
func (b base) flash(c *fiber.Ctx, nivel, msg string) {
	sess, err := b.sessions.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessFlashNivel, nivel)
	sess.Set(sessFlashMsg, msg)
	_ = sess.Save()
}

// paramID lê o :id da rota; valores não numéricos ou não positivos viram 404.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

// trataErro converte erros de domínio na resposta HTTP correspondente.
func trataErro(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.ErrNotFound
	}
	return err
}
