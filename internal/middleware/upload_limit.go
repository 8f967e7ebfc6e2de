package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitUploadSize rejeita requisições acima de maxBytes antes que o handler
// de upload seja executado. Requisições sem Content-Length confiável passam
// pelo precheck mas são cortadas pelo MaxBytesReader durante a leitura; o
// handler traduz esse *http.MaxBytesError também para 413.
func LimitUploadSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.String(http.StatusRequestEntityTooLarge, "arquivo excede o limite de upload")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
