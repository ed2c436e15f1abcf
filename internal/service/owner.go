package service

import (
	"context"
	"errors"
	"log/slog"

	"linkpulse/internal/domain"
)

// ownerName looks up the display name for a link owner. Anonymous links and
// unknown owners resolve to an empty name.
func ownerName(ctx context.Context, owners OwnerDirectory, link *domain.ShortLink, logger *slog.Logger) string {
	if link.OwnerID == nil {
		return ""
	}
	name, err := owners.DisplayName(ctx, *link.OwnerID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("failed to look up owner",
				slog.String("owner_id", link.OwnerID.String()),
				slog.String("error", err.Error()))
		}
		return ""
	}
	return name
}
