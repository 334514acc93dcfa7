package nikud

import (
	"context"
	"log"
)

// Service degrades annotation failures to a pass-through: a line without
// nikud still synthesizes, it just sounds worse, so the call never stops
// here.
type Service struct {
	annotator Annotator
}

func NewService(annotator Annotator) *Service {
	return &Service{annotator: annotator}
}

func (s *Service) Annotate(ctx context.Context, text string) string {
	vocalized, err := s.annotator.AddNikud(ctx, text)
	if err != nil {
		log.Printf("[nikud] annotation skipped: %v", err)
		return text
	}
	return vocalized
}
