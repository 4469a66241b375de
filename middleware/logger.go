package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger пише у журнал метод, шлях, статус і тривалість запиту
func Logger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		log.Printf("%s %s -> %d (%s)",
			ctx.Request.Method,
			path,
			ctx.Writer.Status(),
			time.Since(start),
		)
	}
}
