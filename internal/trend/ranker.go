// Package trend scores videos by view velocity and ranks them.
//
// The trending score rewards videos that accumulate views quickly after
// publication: views per elapsed day, boosted super-linearly by absolute
// view count. Videos published outside the trending window (or in the
// future) always score 0.
package trend

import (
	"sort"
	"time"

	"trendfinder/internal/youtube"
)

const (
	// DefaultWindowDays is the trailing span within which a video must
	// have been published to be eligible for scoring.
	DefaultWindowDays = 14

	// DefaultMinScore filters out videos that are not growing fast
	// enough to be worth listing.
	DefaultMinScore = 1000

	viewBoostDivisor = 10000
	hoursPerDay      = 24
)

// ScoredVideo is a video annotated with its trending score.
type ScoredVideo struct {
	youtube.Video
	TrendingScore float64 `json:"trending_score"`
}

// RankerOption configures the Ranker.
type RankerOption func(*Ranker)

// WithWindow sets the trending window in days.
func WithWindow(days int) RankerOption {
	return func(r *Ranker) {
		r.windowDays = float64(days)
	}
}

// WithNow sets the clock used for age computations (useful for testing).
func WithNow(now func() time.Time) RankerOption {
	return func(r *Ranker) {
		r.now = now
	}
}

// Ranker computes trending scores and orders videos by them.
type Ranker struct {
	windowDays float64
	now        func() time.Time
}

// NewRanker creates a Ranker with the default 14-day trending window.
func NewRanker(opts ...RankerOption) *Ranker {
	r := &Ranker{
		windowDays: DefaultWindowDays,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Score computes the trending score for a single video.
//
// The window-exclusion checks use the unclamped fractional age; the
// divisor is floored at one day so same-day videos do not blow up the
// rate.
func (r *Ranker) Score(v youtube.Video) float64 {
	days := r.now().UTC().Sub(v.PublishedAt).Hours() / hoursPerDay

	// Publish timestamp in the future (clock skew or scheduled premiere).
	if days < 0 {
		return 0
	}

	if days > r.windowDays {
		return 0
	}

	if days < 1 {
		days = 1
	}

	viewsPerDay := float64(v.ViewCount) / days

	return viewsPerDay * (1 + float64(v.ViewCount)/viewBoostDivisor)
}

// Rank annotates every video with its score, drops those below minScore,
// and returns the rest in descending score order. The sort is stable so
// equal scores keep their input order.
func (r *Ranker) Rank(videos []youtube.Video, minScore float64) []ScoredVideo {
	ranked := make([]ScoredVideo, 0, len(videos))
	for _, v := range videos {
		score := r.Score(v)
		if score < minScore {
			continue
		}
		ranked = append(ranked, ScoredVideo{Video: v, TrendingScore: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore > ranked[j].TrendingScore
	})

	return ranked
}
