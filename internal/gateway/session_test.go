package gateway

import (
	"context"
	"errors"
	"testing"
)

func TestStaticSessionPrefersRequestSession(t *testing.T) {
	static := StaticSession{Session: Session{AccessToken: "static", UserID: "u-static"}}

	s, ok := static.CurrentSession(context.Background())
	if !ok || s.AccessToken != "static" {
		t.Fatalf("CurrentSession() = %v, %v", s, ok)
	}

	ctx := WithSession(context.Background(), Session{AccessToken: "req", UserID: "u-req"})
	u, ok := static.CurrentUser(ctx)
	if !ok || u.ID != "u-req" {
		t.Fatalf("CurrentUser() = %v, %v", u, ok)
	}
}

func TestCurrentUserNeedsUserID(t *testing.T) {
	ctx := WithSession(context.Background(), Session{AccessToken: "token"})
	if _, ok := (ContextSessions{}).CurrentSession(ctx); !ok {
		t.Fatal("expected session")
	}
	if _, ok := (ContextSessions{}).CurrentUser(ctx); ok {
		t.Fatal("expected no user without UserID")
	}
}

func TestRequireSession(t *testing.T) {
	if _, err := RequireSession(context.Background(), nil); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("nil provider: %v", err)
	}
	if _, err := RequireSession(context.Background(), StaticSession{}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("empty static: %v", err)
	}
}

func TestRemoteErrorClassification(t *testing.T) {
	err := error(&RemoteError{Op: "dpm.ListEvents", StatusCode: 500, Message: "boom"})
	if !errors.Is(err, ErrRemoteFailure) {
		t.Fatal("RemoteError should match ErrRemoteFailure")
	}
	if errors.Is(err, ErrMisconfigured) {
		t.Fatal("RemoteError should not match ErrMisconfigured")
	}
	if got := err.Error(); got != "dpm.ListEvents: remote returned status 500: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(Misconfigured("DPM_FUNCTIONS_URL"), ErrMisconfigured) {
		t.Fatal("Misconfigured should wrap ErrMisconfigured")
	}
}
