package services

import (
	"context"
	"log"
	"strings"
	"time"

	"Vitals360/models"
)

// ReviewStore lists reviews newest first and appends new ones.
type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) error
}

type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.store.List(ctx)
	if err != nil {
		log.Println("Error fetching reviews:", err)
		return nil, err
	}
	return reviews, nil
}

/*
* Trim the submitted fields
* Stamp the server time and append
 */
func (s *ReviewService) CreateReview(ctx context.Context, req models.CreateReviewRequest) error {
	review := models.Review{
		Name: strings.TrimSpace(req.Name),
		Text: strings.TrimSpace(req.Text),
		Date: time.Now(),
	}
	if err := s.store.Create(ctx, review); err != nil {
		log.Println("Error saving review:", err)
		return err
	}
	return nil
}
