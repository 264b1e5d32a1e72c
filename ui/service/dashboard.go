package service

import (
	"context"
)

// recentDocumentCount is how many documents the dashboard shows in its
// recent activity panel.
const recentDocumentCount = 5

// GetDashboardStats returns aggregated statistics for the dashboard.
// collection, when non-empty, restricts the recent activity panel to a
// single collection; the global counters always cover the whole store.
func (s *Service) GetDashboardStats(ctx context.Context, collection string) (*DashboardStats, error) {
	storeStats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalDocuments:   storeStats.TotalDocuments,
		TotalCollections: storeStats.TotalCollections,
		Summarized:       storeStats.Summarized,
		UpdatedToday:     storeStats.UpdatedToday,
		BySourceType:     storeStats.BySourceType,
	}
	if stats.BySourceType == nil {
		stats.BySourceType = make(map[string]int)
	}

	collections, err := s.store.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	stats.Collections = collections

	recent, err := s.ListDocuments(ctx, DocumentListParams{
		Collection: collection,
		Limit:      recentDocumentCount,
	})
	if err != nil {
		return nil, err
	}
	stats.RecentDocuments = recent.Documents

	return stats, nil
}
