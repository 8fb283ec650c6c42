package handler

import (
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware - Bearer 토큰이 있으면 세션을 요청 컨텍스트에 저장.
// 토큰이 없으면 그대로 통과 (조회는 fallback, 변경은 서비스에서 ErrUnauthenticated)
func SessionMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
			return
		}

		session, err := sessions.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
			return
		}

		c.Request = c.Request.WithContext(gateway.WithSession(c.Request.Context(), *session))
		c.Next()
	}
}

// CORSMiddleware - Allow-Methods는 첫 요청 시 등록된 라우트에서 계산
func CORSMiddleware(allowedOrigins []string, allowCredentials bool, routes func() gin.RoutesInfo) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			originMap[trimmed] = struct{}{}
		}
	}

	var (
		once    sync.Once
		methods string
	)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := originMap[origin]; ok {
			once.Do(func() { methods = allowedMethods(routes()) })

			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.Set("Access-Control-Allow-Methods", methods)
			if allowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func allowedMethods(routes gin.RoutesInfo) string {
	methods := []string{http.MethodOptions}
	for _, r := range routes {
		if !slices.Contains(methods, r.Method) {
			methods = append(methods, r.Method)
		}
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}
