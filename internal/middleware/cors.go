package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware 단일 origin 만 허용, 인증정보(쿠키) 포함 요청 허용
func CORSMiddleware(origin string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodPost,
		http.MethodDelete,
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", RequestIDHeader)
	config.ExposeHeaders = []string{RequestIDHeader}
	config.AllowCredentials = true
	config.OptionsResponseStatusCode = http.StatusNoContent
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
