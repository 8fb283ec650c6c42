package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/eventnav/backend/internal/client"
	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/db"
	"github.com/eventnav/backend/internal/fallback"
	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/handler"
	"github.com/eventnav/backend/internal/service"
	"github.com/joho/godotenv"
)

type remoteStores interface {
	service.FeedbackStore
	service.BuddyStore
}

func main() {
	// 로컬 실행 시 .env (없으면 무시)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] Failed to load .env: %v", err)
	}
	cfg := config.Load()

	sessionService := service.NewSessionService(cfg.Supabase)
	sessions := sessionService.Provider(cfg.Session)

	stores, closeStores := newRemoteStores(cfg, sessionService, sessions)
	defer closeStores()

	dpm := client.NewDPMClient(cfg.DPM, cfg.Gateway, sessions)
	if !dpm.IsConfigured() {
		log.Printf("[Config] DPM_FUNCTIONS_URL is not set, event endpoints will fail")
	}

	// fallback 저장소는 프로세스당 하나
	fb := fallback.New()

	router := handler.NewRouter(cfg.Server, handler.Services{
		Events:   service.NewEventService(dpm, fb, cfg.Events),
		Feedback: service.NewFeedbackService(stores, fb),
		Buddies:  service.NewBuddyService(stores, sessions),
		Sessions: sessionService,
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[Server] %v", err)
	}
}

// Postgres 설정이 있으면 직접 연결, 아니면 Supabase REST
// Postgres는 토큰을 다시 검증하지 않으므로 SUPABASE_JWT_SECRET 없이는 시작하지 않음
func newRemoteStores(cfg config.Config, sessionService *service.SessionService, sessions gateway.SessionProvider) (remoteStores, func()) {
	if !cfg.Postgres.Enabled() {
		supabase := client.NewSupabaseClient(cfg.Supabase, cfg.Gateway, sessions)
		if !supabase.IsConfigured() {
			log.Printf("[Config] SUPABASE_URL/SUPABASE_ANON_KEY are not set, feedback and buddy endpoints will fail")
		}
		return supabase, func() {}
	}

	if err := sessionService.RequireVerification(); err != nil {
		log.Fatalf("[Postgres] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Postgres] %v", err)
	}
	pg := db.NewPostgres(pool, sessions)
	if err := pg.EnsureFeedbackSchema(ctx); err != nil {
		log.Fatalf("[Postgres] Failed to ensure feedback schema: %v", err)
	}
	if err := pg.EnsureBuddySchema(ctx); err != nil {
		log.Fatalf("[Postgres] Failed to ensure buddy schema: %v", err)
	}
	log.Printf("[Postgres] Connected, using direct storage")
	return pg, pool.Close
}
