package queries

import (
	"context"

	"freight/internal/core/ports"
)

// GetRecentActivityQueryHandler reads the activity store.
type GetRecentActivityQueryHandler struct {
	store ports.ActivityStore
}

func NewGetRecentActivityQueryHandler(store ports.ActivityStore) GetRecentActivityQueryHandler {
	return GetRecentActivityQueryHandler{store: store}
}

// Handle returns up to query.Limit() entries, oldest first.
func (h GetRecentActivityQueryHandler) Handle(
	ctx context.Context,
	query GetRecentActivityQuery,
) ([]GetRecentActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.store.Recent(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	result := make([]GetRecentActivityQueryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, GetRecentActivityQueryResponse{
			ID:         e.ID(),
			RecordedAt: e.RecordedAt(),
			Message:    e.Message(),
			Line:       e.String(),
		})
	}

	return result, nil
}
