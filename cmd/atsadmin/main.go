package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/config"
	"github.com/carehive/ats-admin/internal/drafts"
	"github.com/carehive/ats-admin/internal/guard"
	"github.com/carehive/ats-admin/internal/logger"
	"github.com/carehive/ats-admin/internal/metrics"
	"github.com/carehive/ats-admin/internal/notify"
	"github.com/carehive/ats-admin/internal/pages"
	"github.com/carehive/ats-admin/internal/repositories"
	"github.com/carehive/ats-admin/internal/session"
	"github.com/carehive/ats-admin/internal/wizard"
	log "github.com/sirupsen/logrus"
)

func runWorkspace(ctx context.Context, cfg *config.Config, sessionStore *session.Store,
	state *repositories.State, bus EventBus.Bus) {

	claims := sessionStore.Claims(ctx)
	if claims == nil {
		log.Fatal("workspace started without decodable session claims")
	}

	apiClient := ats.NewClient(cfg.API.BaseURL, sessionStore)
	apiClient.SetRateLimit(cfg.API.MaxRequestsPerSecond)

	notifications, err := notify.NewChannel(bus)
	if err != nil {
		log.Fatalf("can't create notification channel: %v", err)
	}

	jobsPage, err := pages.NewJobsPage(apiClient, notifications, bus, claims.CompanyID)
	if err != nil {
		log.Fatalf("can't create jobs page: %v", err)
	}

	jobWizard, err := wizard.New(ctx, drafts.NewStore(state), apiClient, bus, claims.CompanyID)
	if err != nil {
		log.Fatalf("can't create job wizard: %v", err)
	}
	log.Infof("job wizard resumed at step %s", jobWizard.Step())

	lookups := pages.NewCachedLookups(apiClient)
	if _, err = lookups.JobCategories(ctx); err != nil {
		log.Warnf("can't prefetch job categories: %v", err)
	}
	if _, err = lookups.HiringManagers(ctx, claims.CompanyID); err != nil {
		log.Warnf("can't prefetch hiring managers: %v", err)
	}

	if err = jobsPage.Refresh(ctx); err != nil {
		log.Warnf("initial jobs fetch failed: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	dbContext, err := repositories.NewDbContext(cfg.State.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	state := repositories.NewStateRepository(dbContext.DB)
	bus := EventBus.New()

	sweeper, err := drafts.NewSweeper(state, drafts.DraftTTL)
	if err != nil {
		log.Fatalf("can't create draft sweeper: %v", err)
	}
	defer sweeper.Stop()

	sessionStore, err := session.NewStore(state, bus)
	if err != nil {
		log.Fatalf("can't create session store: %v", err)
	}

	shell, err := guard.NewShell(sessionStore)
	if err != nil {
		log.Fatalf("can't create shell: %v", err)
	}

	decision := shell.Mount(ctx)
	if decision.State == guard.StateAuthorized {
		runWorkspace(ctx, cfg, sessionStore, state, bus)
	} else {
		log.Infof("session not authorized, redirecting to %s", decision.RedirectTo)
	}

	<-ctx.Done()

	log.Info("Shutting down...")
}
