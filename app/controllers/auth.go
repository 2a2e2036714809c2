package controllers

import (
	"net/http"

	"github.com/cardstore/console/pkg/auth"
	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/middleware"
	"github.com/cardstore/console/pkg/response"
	"github.com/cardstore/console/pkg/session"
)

// AuthController handles the login gate in front of the console.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
<form id="login-form" method="post" action="/login">
  <input type="password" name="password" placeholder="Admin password" required>
  <button type="submit">Sign in</button>
</form>
</body>
</html>`

// ShowLogin renders the password form.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	response.HTML(w, http.StatusOK, loginPage)
}

// Login checks the submitted password against the configured admin hash
// and, on success, stores a fresh admin token in the session.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}

	password := r.PostFormValue("password")
	if !auth.CheckPassword(password) {
		logger.Warn("login rejected", "remote", r.RemoteAddr)
		response.Unauthorized(w)
		return
	}

	token, err := auth.GenerateToken("admin", "admin")
	if err != nil {
		logger.Error("token generation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not start session")
		return
	}

	sess := session.FromCtx(r)
	sess.Set(middleware.SessionTokenKey, token)
	if err := sess.Save(w); err != nil {
		logger.Error("session save failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not start session")
		return
	}

	http.Redirect(w, r, "/console", http.StatusSeeOther)
}

// Logout drops the session and returns to the login page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		logger.Error("session save failed", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
