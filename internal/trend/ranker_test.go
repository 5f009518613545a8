package trend

import (
	"math"
	"testing"
	"time"

	"trendfinder/internal/youtube"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func newTestRanker(opts ...RankerOption) *Ranker {
	opts = append([]RankerOption{WithNow(func() time.Time { return testNow })}, opts...)
	return NewRanker(opts...)
}

func video(id string, publishedAt time.Time, views int64) youtube.Video {
	return youtube.Video{ID: id, PublishedAt: publishedAt, ViewCount: views}
}

func TestScore_OutsideWindowIsZero(t *testing.T) {
	r := newTestRanker()

	v := video("old", testNow.Add(-15*24*time.Hour), 1_000_000)

	if got := r.Score(v); got != 0 {
		t.Errorf("video older than the window must score 0, got %f", got)
	}
}

func TestScore_JustInsideWindowIsScored(t *testing.T) {
	r := newTestRanker()

	v := video("edge", testNow.Add(-13*24*time.Hour), 13000)

	// 13000 views / 13 days * (1 + 1.3) = 2300
	want := 2300.0
	if got := r.Score(v); math.Abs(got-want) > 1e-6 {
		t.Errorf("expected score %f, got %f", want, got)
	}
}

func TestScore_FuturePublishIsZero(t *testing.T) {
	r := newTestRanker()

	v := video("future", testNow.Add(time.Hour), 1_000_000)

	if got := r.Score(v); got != 0 {
		t.Errorf("future publish timestamp must score 0, got %f", got)
	}
}

func TestScore_SameDayVideoClampsDivisorToOneDay(t *testing.T) {
	r := newTestRanker()

	v := video("fresh", testNow, 20000)

	// Divisor floored at 1 day: 20000 * (1 + 2) = 60000.
	want := 60000.0
	if got := r.Score(v); math.Abs(got-want) > 1e-6 {
		t.Errorf("expected score %f, got %f", want, got)
	}
}

func TestScore_ZeroViewsIsZero(t *testing.T) {
	r := newTestRanker()

	v := video("unseen", testNow.Add(-2*24*time.Hour), 0)

	if got := r.Score(v); got != 0 {
		t.Errorf("zero views must score 0, got %f", got)
	}
}

func TestScore_CustomWindow(t *testing.T) {
	r := newTestRanker(WithWindow(7))

	v := video("wk", testNow.Add(-8*24*time.Hour), 1_000_000)

	if got := r.Score(v); got != 0 {
		t.Errorf("video outside a 7-day window must score 0, got %f", got)
	}
}

func TestRank_FiltersBelowMinScore(t *testing.T) {
	r := newTestRanker()

	videos := []youtube.Video{
		video("hot", testNow.Add(-24*time.Hour), 50000),
		video("cold", testNow.Add(-24*time.Hour), 10),
	}

	ranked := r.Rank(videos, 1000)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 video above threshold, got %d", len(ranked))
	}
	if ranked[0].ID != "hot" {
		t.Errorf("expected 'hot' to survive filtering, got %q", ranked[0].ID)
	}
	for _, v := range ranked {
		if v.TrendingScore < 1000 {
			t.Errorf("ranked output must never contain scores below minScore, got %f", v.TrendingScore)
		}
	}
}

func TestRank_SortsDescending(t *testing.T) {
	r := newTestRanker()

	videos := []youtube.Video{
		video("mid", testNow.Add(-24*time.Hour), 20000),
		video("top", testNow.Add(-24*time.Hour), 90000),
		video("low", testNow.Add(-24*time.Hour), 12000),
	}

	ranked := r.Rank(videos, 0)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(ranked))
	}

	wantOrder := []string{"top", "mid", "low"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, ranked[i].ID)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].TrendingScore > ranked[i-1].TrendingScore {
			t.Error("scores must be non-increasing")
		}
	}
}

func TestRank_StableForEqualScores(t *testing.T) {
	r := newTestRanker()

	publishedAt := testNow.Add(-24 * time.Hour)
	videos := []youtube.Video{
		video("first", publishedAt, 30000),
		video("second", publishedAt, 30000),
	}

	ranked := r.Rank(videos, 0)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(ranked))
	}
	if ranked[0].ID != "first" || ranked[1].ID != "second" {
		t.Error("equal scores must keep their input order")
	}
}

func TestRank_AnnotatesScore(t *testing.T) {
	r := newTestRanker()

	videos := []youtube.Video{video("v", testNow.Add(-2*24*time.Hour), 10000)}

	ranked := r.Rank(videos, 0)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 video, got %d", len(ranked))
	}
	// 10000/2 * (1 + 1) = 10000
	if math.Abs(ranked[0].TrendingScore-10000) > 1e-6 {
		t.Errorf("expected score 10000, got %f", ranked[0].TrendingScore)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	r := newTestRanker()

	ranked := r.Rank(nil, DefaultMinScore)

	if ranked == nil {
		t.Fatal("should return empty slice, not nil")
	}
	if len(ranked) != 0 {
		t.Errorf("expected no results, got %d", len(ranked))
	}
}
