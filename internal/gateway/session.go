package gateway

import "context"

// Session - 인증 제공자에게서 받은 세션
type Session struct {
	AccessToken string
	UserID      string
	Email       string
}

type User struct {
	ID    string
	Email string
}

// SessionProvider - 인증 협력자. 로그인/갱신 흐름은 다루지 않는다
type SessionProvider interface {
	CurrentSession(ctx context.Context) (*Session, bool)
	CurrentUser(ctx context.Context) (*User, bool)
}

type sessionKey struct{}

// WithSession - 요청 컨텍스트에 세션 저장 (handler 미들웨어에서 사용)
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || s.AccessToken == "" {
		return nil, false
	}
	return &s, true
}

// ContextSessions - 요청 컨텍스트의 세션을 사용하는 SessionProvider
type ContextSessions struct{}

func (ContextSessions) CurrentSession(ctx context.Context) (*Session, bool) {
	return SessionFromContext(ctx)
}

func (ContextSessions) CurrentUser(ctx context.Context) (*User, bool) {
	return userFromSession(SessionFromContext(ctx))
}

// StaticSession - 고정 토큰 (EVENTNAV_ACCESS_TOKEN). 요청 컨텍스트 세션이 있으면 그쪽이 우선
type StaticSession struct {
	Session Session
}

func (p StaticSession) CurrentSession(ctx context.Context) (*Session, bool) {
	if s, ok := SessionFromContext(ctx); ok {
		return s, true
	}
	if p.Session.AccessToken == "" {
		return nil, false
	}
	s := p.Session
	return &s, true
}

func (p StaticSession) CurrentUser(ctx context.Context) (*User, bool) {
	return userFromSession(p.CurrentSession(ctx))
}

func userFromSession(s *Session, ok bool) (*User, bool) {
	if !ok || s.UserID == "" {
		return nil, false
	}
	return &User{ID: s.UserID, Email: s.Email}, true
}

// RequireSession - 세션이 없으면 ErrUnauthenticated
func RequireSession(ctx context.Context, sessions SessionProvider) (*Session, error) {
	if sessions == nil {
		return nil, ErrUnauthenticated
	}
	s, ok := sessions.CurrentSession(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return s, nil
}
