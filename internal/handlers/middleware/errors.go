package middleware

import "github.com/gin-gonic/gin"

// ErrorResponder escreve a resposta de erro e aborta a cadeia.
// Os middlewares recebem o responder por injeção para não depender do pacote dto.
type ErrorResponder func(c *gin.Context, err error)

func abortWith(respond ErrorResponder, c *gin.Context, status int, err error) {
	if respond == nil {
		c.AbortWithStatus(status)
		return
	}
	respond(c, err)
	c.Abort()
}
