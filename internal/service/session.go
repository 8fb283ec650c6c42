package service

import (
	"log"
	"strings"
	"time"

	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/gateway"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService - Supabase access token에서 사용자 식별
type SessionService struct {
	jwtSecret []byte
	now       func() time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewSessionService(cfg config.SupabaseConfig) *SessionService {
	return &SessionService{
		jwtSecret: []byte(cfg.JWTSecret),
		now:       time.Now,
	}
}

// Verifies - 서명 검증 여부 (SUPABASE_JWT_SECRET 설정 시)
func (s *SessionService) Verifies() bool {
	return len(s.jwtSecret) > 0
}

// RequireVerification - 토큰을 다시 검증하지 않는 저장소(Postgres 직접 연결)는 secret 필수
func (s *SessionService) RequireVerification() error {
	if !s.Verifies() {
		return gateway.Misconfigured("SUPABASE_JWT_SECRET")
	}
	return nil
}

// ParseAccessToken - secret이 없으면 서명 검증 없이 claim만 읽는다 (검증은 Supabase RLS에서).
// alg=none 토큰은 어느 경우든 거부
func (s *SessionService) ParseAccessToken(tokenStr string) (*gateway.Session, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, gateway.ErrUnauthenticated
	}

	claims := &sessionClaims{}
	if s.Verifies() {
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, gateway.ErrUnauthenticated
			}
			return s.jwtSecret, nil
		}, jwt.WithTimeFunc(s.now))
		if err != nil || !token.Valid {
			return nil, gateway.ErrUnauthenticated
		}
	} else {
		token, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
		if err != nil || token.Method == jwt.SigningMethodNone {
			return nil, gateway.ErrUnauthenticated
		}
		if claims.ExpiresAt != nil && s.now().After(claims.ExpiresAt.Time) {
			return nil, gateway.ErrUnauthenticated
		}
	}

	if claims.Subject == "" {
		return nil, gateway.ErrUnauthenticated
	}

	return &gateway.Session{
		AccessToken: tokenStr,
		UserID:      claims.Subject,
		Email:       claims.Email,
	}, nil
}

// Provider - 요청 세션 우선. 고정 세션(EVENTNAV_ACCESS_TOKEN)은 dev 모드에서만 사용
func (s *SessionService) Provider(cfg config.SessionConfig) gateway.SessionProvider {
	if cfg.AccessToken == "" {
		return gateway.ContextSessions{}
	}
	if !cfg.DevMode {
		log.Printf("[Session] EVENTNAV_ACCESS_TOKEN is ignored unless EVENTNAV_DEV_SESSION=true")
		return gateway.ContextSessions{}
	}

	static := gateway.Session{AccessToken: cfg.AccessToken, UserID: cfg.UserID}
	if static.UserID == "" {
		if parsed, err := s.ParseAccessToken(cfg.AccessToken); err == nil {
			static = *parsed
		} else {
			log.Printf("[Session] EVENTNAV_ACCESS_TOKEN has no usable subject: %v", err)
		}
	}
	log.Printf("[Session] WARNING: dev session enabled, requests without Authorization act as %q", static.UserID)
	return gateway.StaticSession{Session: static}
}
