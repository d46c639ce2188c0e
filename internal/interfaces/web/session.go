package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/pkg/config"
)

// Chaves usadas na sessão e em c.Locals.
const (
	sessUsuarioID   = "usuario_id"
	sessUsuarioNome = "usuario_nome"
	sessFlashNivel  = "flash_nivel"
	sessFlashMsg    = "flash_msg"

	localUsuarioID   = "usuario_id"
	localUsuarioNome = "usuario_nome"

	rotaLogin = "/login/"
)

// NewSessionStore cria o store de sessões de login (cookie HTTPOnly).
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.ExpirationHours) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})
}

// RequireAuth redireciona visitantes não autenticados para a tela de login e
// deixa o usuário logado disponível em c.Locals para os handlers.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect(rotaLogin, fiber.StatusFound)
		}
		uid, ok := sess.Get(sessUsuarioID).(int64)
		if !ok || uid == 0 {
			return c.Redirect(rotaLogin, fiber.StatusFound)
		}
		c.Locals(localUsuarioID, uid)
		if nome, ok := sess.Get(sessUsuarioNome).(string); ok {
			c.Locals(localUsuarioNome, nome)
		}
		return c.Next()
	}
}

// RedirectAutenticado manda usuários já logados de volta para a página inicial.
// Usado em /login/ e /registrar/.
func RedirectAutenticado(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err == nil {
			if uid, ok := sess.Get(sessUsuarioID).(int64); ok && uid != 0 {
				return c.Redirect("/", fiber.StatusFound)
			}
		}
		return c.Next()
	}
}

// usuarioID devolve o ID do usuário logado (0 fora de rotas autenticadas).
func usuarioID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(localUsuarioID).(int64)
	return v
}

// usuarioNome devolve o username do usuário logado.
func usuarioNome(c *fiber.Ctx) string {
	v, _ := c.Locals(localUsuarioNome).(string)
	return v
}
