package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/estoqueti/estoque-web/internal/application/dto"
	"github.com/estoqueti/estoque-web/internal/application/usecase"
	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// AuthHandler páginas de login, logout e registro de conta.
type AuthHandler struct {
	base
	uc *usecase.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *usecase.AuthUseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{base: base{sessions: sessions}, uc: uc}
}

// LoginForm GET /login/
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return h.render(c, "pages/login", fiber.Map{
		"Titulo": "Entrar",
		"Form":   dto.LoginForm{},
	})
}

// Login POST /login/ autentica e abre a sessão.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	u, err := h.uc.Login(c.UserContext(), form)
	if errors.Is(err, domain.ErrCredenciaisInvalidas) {
		return h.render(c, "pages/login", fiber.Map{
			"Titulo": "Entrar",
			"Erro":   "Usuário ou senha inválidos.",
			"Form":   dto.LoginForm{Username: form.Username},
		})
	}
	if err != nil {
		return err
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessUsuarioID, u.ID)
	sess.Set(sessUsuarioNome, u.Username)
	sess.Set(sessFlashNivel, flashSuccess)
	sess.Set(sessFlashMsg, "Login realizado com sucesso!")
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

// Logout GET /logout/ encerra a sessão.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := h.sessions.Get(c); err == nil {
		_ = sess.Destroy()
	}
	h.flash(c, flashInfo, "Sessão encerrada. Até logo!")
	return c.Redirect(rotaLogin, fiber.StatusFound)
}

// RegistroForm GET /registrar/
func (h *AuthHandler) RegistroForm(c *fiber.Ctx) error {
	return h.renderRegistro(c, dto.RegistroForm{Perfil: entity.PerfilTecnicoTI}, dto.FieldErrors{})
}

// Registrar POST /registrar/ cria a conta e manda para o login.
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var form dto.RegistroForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	_, fe, err := h.uc.Registrar(c.UserContext(), form)
	if err != nil {
		return err
	}
	if fe.HasErrors() {
		// Senhas nunca voltam preenchidas para o navegador.
		form.Senha1, form.Senha2 = "", ""
		return h.renderRegistro(c, form, fe)
	}

	h.flash(c, flashSuccess, "Conta criada com sucesso! Faça login para continuar.")
	return c.Redirect(rotaLogin, fiber.StatusFound)
}

func (h *AuthHandler) renderRegistro(c *fiber.Ctx, form dto.RegistroForm, fe dto.FieldErrors) error {
	return h.render(c, "pages/registro", fiber.Map{
		"Titulo": "Criar conta",
		"Form":   form,
		"Erros":  fe,
		"Perfis": entity.Perfis,
	})
}
