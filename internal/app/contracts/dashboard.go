package contracts

import (
	"context"
	"healthapp-admin/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	Overview(ctx context.Context) (*responses.DashboardOverview, error)
	Refresh(ctx context.Context)
	// Fetch matches the poller contract: load remote state, return the
	// apply closure that installs it.
	Fetch(ctx context.Context) func()
}
