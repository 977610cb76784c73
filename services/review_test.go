package services

import (
	"context"
	"testing"
	"time"

	"Vitals360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReviews_NewestFirst(t *testing.T) {
	now := time.Now()
	store := &fakeReviewStore{reviews: []models.Review{
		{Name: "Asha", Text: "Great care", Date: now.Add(-2 * time.Hour)},
		{Name: "Ravi", Text: "Quick service", Date: now},
		{Name: "Meera", Text: "Very kind staff", Date: now.Add(-1 * time.Hour)},
	}}
	svc := NewReviewService(store)

	reviews, err := svc.ListReviews(context.Background())

	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].Date.After(reviews[i-1].Date),
			"reviews must be in non-increasing date order")
	}
	assert.Equal(t, "Ravi", reviews[0].Name)
}

func TestListReviews_StoreFailure(t *testing.T) {
	svc := NewReviewService(&fakeReviewStore{failList: true})

	_, err := svc.ListReviews(context.Background())

	assert.Error(t, err)
}

func TestCreateReview_TrimsAndStampsDate(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store)

	err := svc.CreateReview(context.Background(), models.CreateReviewRequest{
		Name: "  Asha  ",
		Text: " Great care ",
	})

	require.NoError(t, err)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, "Asha", store.reviews[0].Name)
	assert.Equal(t, "Great care", store.reviews[0].Text)
	assert.False(t, store.reviews[0].Date.IsZero())
}

func TestCreateReview_StoreFailure(t *testing.T) {
	svc := NewReviewService(&fakeReviewStore{failCreate: true})

	err := svc.CreateReview(context.Background(), models.CreateReviewRequest{Name: "Asha", Text: "x"})

	assert.Error(t, err)
}
