package ui

import (
	"testing"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

func detailWith(c model.Campground) *DetailModel {
	m := NewDetailModel()
	m.SetCampground(c)
	return m
}

func TestCarouselWrapsAround(t *testing.T) {
	m := detailWith(model.Campground{
		MongoID: "c1",
		Images: []model.Image{
			{URL: "u0"}, {URL: "u1"}, {URL: "u2"},
		},
	})

	if m.CurrentImageURL() != "u0" {
		t.Errorf("start = %s", m.CurrentImageURL())
	}
	m.PrevImage()
	if m.CurrentImageURL() != "u2" {
		t.Errorf("prev from first = %s, want u2", m.CurrentImageURL())
	}
	m.NextImage()
	if m.CurrentImageURL() != "u0" {
		t.Errorf("next from last = %s, want u0", m.CurrentImageURL())
	}
}

func TestCarouselNoImages(t *testing.T) {
	m := detailWith(model.Campground{MongoID: "c1"})
	m.NextImage()
	m.PrevImage()
	if m.CurrentImageURL() != "" {
		t.Errorf("url = %q, want empty", m.CurrentImageURL())
	}
}

func TestReviewSorting(t *testing.T) {
	m := detailWith(model.Campground{
		MongoID: "c1",
		Reviews: []model.Review{
			{MongoID: "r1", Rating: 4},
			{MongoID: "r2", Rating: 2},
			{MongoID: "r3", Rating: 5},
		},
	})

	m.SortAscending()
	got := m.Reviews()
	if got[0].Rating != 2 || got[1].Rating != 4 || got[2].Rating != 5 {
		t.Errorf("ascending = %v", ratings(got))
	}

	m.SortDescending()
	got = m.Reviews()
	if got[0].Rating != 5 || got[1].Rating != 4 || got[2].Rating != 2 {
		t.Errorf("descending = %v", ratings(got))
	}

	m.SortReset()
	got = m.Reviews()
	if got[0].Key() != "r1" || got[1].Key() != "r2" || got[2].Key() != "r3" {
		t.Errorf("reset should restore server order, got %v", keys(got))
	}

	// Sorting must never mutate the campground's own slice.
	orig := m.Campground().Reviews
	if orig[0].Key() != "r1" || orig[2].Key() != "r3" {
		t.Errorf("campground reviews mutated: %v", keys(orig))
	}
}

func TestAddAndRemoveReview(t *testing.T) {
	m := detailWith(model.Campground{MongoID: "c1"})

	m.AddReview(model.Review{MongoID: "r1", Rating: 5, Content: "great"})
	if len(m.Reviews()) != 1 {
		t.Fatalf("reviews = %d, want 1", len(m.Reviews()))
	}
	m.RemoveReview("r1")
	if len(m.Reviews()) != 0 {
		t.Errorf("reviews = %d after remove", len(m.Reviews()))
	}
}

func TestOwnershipGates(t *testing.T) {
	owner := &model.UserRef{MongoID: "u1", Username: "owner"}
	m := detailWith(model.Campground{MongoID: "c1", Author: owner})

	// Alias forms of the same id must still count as the owner.
	m.SetViewer(&model.UserRef{UserID: "u1"})
	if !m.IsOwner() {
		t.Error("alias id should match the author")
	}
	if m.CanReview() {
		t.Error("the author must not review their own campground")
	}

	m.SetViewer(&model.UserRef{MongoID: "u2"})
	if m.IsOwner() {
		t.Error("different user flagged as owner")
	}
	if !m.CanReview() {
		t.Error("a signed-in non-author should be able to review")
	}

	m.SetViewer(nil)
	if m.CanReview() {
		t.Error("no profile means no review affordance")
	}
	if m.IsOwner() || m.CanModerate() {
		t.Error("no profile grants nothing")
	}
}

func TestReviewDeletionGate(t *testing.T) {
	m := detailWith(model.Campground{
		MongoID: "c1",
		Author:  &model.UserRef{MongoID: "owner1"},
		Reviews: []model.Review{
			{MongoID: "r1", Rating: 3, Author: &model.UserRef{MongoID: "u9"}},
		},
	})

	m.SetViewer(&model.UserRef{AltID: "u9"})
	if !m.CanDeleteSelectedReview() {
		t.Error("review author should be able to delete their review")
	}

	m.SetViewer(&model.UserRef{MongoID: "u2"})
	if m.CanDeleteSelectedReview() {
		t.Error("unrelated user should not delete the review")
	}

	m.SetViewer(&model.UserRef{MongoID: "u2", IsAdmin: true})
	if !m.CanDeleteSelectedReview() {
		t.Error("admins may delete any review")
	}
}

func TestApprovalFlip(t *testing.T) {
	m := detailWith(model.Campground{MongoID: "c1", Approved: true})
	m.ApplyApproval(false)
	if m.Campground().Approved {
		t.Error("approval flag should flip locally")
	}
}

func TestComposerRatingBounds(t *testing.T) {
	m := detailWith(model.Campground{MongoID: "c1"})
	m.StartReview()
	if m.Rating() != 1 {
		t.Errorf("default rating = %d, want 1", m.Rating())
	}
	m.SetRating(0)
	if m.Rating() != 1 {
		t.Errorf("rating below 1 should clamp, got %d", m.Rating())
	}
	m.SetRating(9)
	if m.Rating() != 5 {
		t.Errorf("rating above 5 should clamp, got %d", m.Rating())
	}
	m.CancelReview()
	if m.Composing() {
		t.Error("cancel should close the composer")
	}
}

func ratings(reviews []model.Review) []int {
	out := make([]int, len(reviews))
	for i, r := range reviews {
		out[i] = r.Rating
	}
	return out
}

func keys(reviews []model.Review) []string {
	out := make([]string, len(reviews))
	for i := range reviews {
		out[i] = reviews[i].Key()
	}
	return out
}
