package middleware

import (
	"ltip-labweb/internal/auth"
	"ltip-labweb/internal/database"
	"ltip-labweb/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser resolve o user_id da sessão para o registro completo uma única
// vez por requisição e o deixa no contexto. Sessão ausente ou id de usuário
// removido resultam em anônimo (nada no contexto).
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user := auth.CurrentUser(database.DB, uid); user != nil {
					c.Set(currentUserKey, user)
				}
			}
		}

		c.Next()
	}
}

// UserFrom devolve o usuário autenticado da requisição, ou nil para anônimo.
func UserFrom(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
