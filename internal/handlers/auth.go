package handlers

import (
	"net/http"

	"ltip-labweb/internal/auth"
	"ltip-labweb/internal/database"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Dados inválidos"})
		return
	}

	user, err := auth.Authenticate(database.DB, form.Username, form.Password)
	if err != nil {
		// mesma mensagem para usuário inexistente e senha errada
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Usuário ou senha inválidos."})
		return
	}

	// a sessão guarda apenas o id; o registro é resolvido a cada requisição
	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	_ = sess.Save()

	flash(c, "Logado com sucesso.")
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
