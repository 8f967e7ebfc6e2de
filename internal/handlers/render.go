package handlers

import (
	"errors"
	"log"
	"net/http"

	"ltip-labweb/internal/middleware"
	"ltip-labweb/internal/uploads"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Uploads é o diretório de blobs compartilhado (imagens e relatórios),
// configurado em server.NewRouter.
var Uploads *uploads.Store

// render é um wrapper sobre c.HTML que injeta o usuário corrente e as
// mensagens flash em todos os templates.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user := middleware.UserFrom(c); user != nil {
		data["user"] = user
	}

	sess := sessions.Default(c)
	if msgs := sess.Flashes(); len(msgs) > 0 {
		_ = sess.Save()
		data["flashes"] = msgs
	}

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// denyAccess implementa o caminho negado do guard de papéis: mensagem e
// redirecionamento para a página inicial, sem expor dados.
func denyAccess(c *gin.Context) {
	flash(c, "Acesso negado: permissões insuficientes.")
	c.Redirect(http.StatusFound, "/")
}

// savedUpload salva o arquivo do campo multipart, se houver. Nome vazio com
// erro nil significa que nenhum arquivo foi enviado; falhas reais de leitura
// ou de gravação no disco são devolvidas ao chamador, nunca engolidas.
func savedUpload(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	stored, err := Uploads.Save(f, fh.Filename)
	if err != nil {
		if errors.Is(err, uploads.ErrNoFile) {
			// nome vazio após sanitização conta como "sem arquivo"
			return "", nil
		}
		return "", err
	}
	return stored, nil
}

// uploadFailure traduz a falha do upload: corpo acima do limite vira 413,
// qualquer erro de E/S vira 500 com mensagem visível ao usuário.
func uploadFailure(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.String(http.StatusRequestEntityTooLarge, "arquivo excede o limite de upload")
		return
	}
	log.Printf("upload failed: %v", err)
	c.String(http.StatusInternalServerError, "falha ao salvar o arquivo")
}
