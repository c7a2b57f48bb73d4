package services

import (
	"context"

	"research_hub_go_backend/internal/models"
)

type PaperSearcher interface {
	Search(ctx context.Context, query, source string) ([]models.PaperRecord, error)
}

var _ PaperSearcher = (*SearchService)(nil)
