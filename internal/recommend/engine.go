package recommend

import (
	"sort"

	"github.com/reelrank/reelrank/internal/domain"
)

const (
	// candidatePoolSize is the width of the per-genre pool recommendations
	// are drawn from before already-rated movies are filtered out.
	candidatePoolSize  = 50
	maxRecommendations = 3
)

// Engine answers ranking queries over one catalog/rating snapshot. Every
// method is a pure read, so a single Engine is safe for concurrent use;
// fresh data means constructing a fresh Engine.
type Engine struct {
	catalog domain.Catalog
	ratings domain.RatingStore
}

// New constructs an Engine over the given snapshot maps.
func New(catalog domain.Catalog, ratings domain.RatingStore) *Engine {
	if catalog == nil {
		catalog = domain.Catalog{}
	}
	if ratings == nil {
		ratings = domain.RatingStore{}
	}
	return &Engine{catalog: catalog, ratings: ratings}
}

// TopMovies returns up to n movie names ranked by average rating. Every
// movie with at least one valid rating qualifies, whether or not the catalog
// knows it.
func (e *Engine) TopMovies(n int) []string {
	items := make([]scoredItem, 0, len(e.ratings))
	for name := range e.ratings {
		if avg, ok := e.AverageRating(name); ok {
			items = append(items, scoredItem{key: name, score: avg})
		}
	}
	return rank(items, n)
}

// TopMoviesInGenre returns up to n movie names within a genre ranked by
// average rating. Movies with no ratings are excluded, not scored zero; an
// unknown genre yields an empty result.
func (e *Engine) TopMoviesInGenre(n int, genre string) []string {
	genre = domain.Normalize(genre)
	var items []scoredItem
	for name, rec := range e.catalog {
		if rec.Genre != genre {
			continue
		}
		if avg, ok := e.AverageRating(name); ok {
			items = append(items, scoredItem{key: name, score: avg})
		}
	}
	return rank(items, n)
}

// TopGenres returns up to n genres ranked by GenreAverage. Genres whose
// movies are all unrated are excluded.
func (e *Engine) TopGenres(n int) []string {
	seen := map[string]struct{}{}
	var items []scoredItem
	for _, rec := range e.catalog {
		if _, ok := seen[rec.Genre]; ok {
			continue
		}
		seen[rec.Genre] = struct{}{}
		if avg, ok := e.GenreAverage(rec.Genre); ok {
			items = append(items, scoredItem{key: rec.Genre, score: avg})
		}
	}
	return rank(items, n)
}

// UserTopGenre returns the genre with the highest mean of the user's own
// ratings across that genre's movies, or the empty string when the user has
// rated nothing in the catalog. All of a user's ratings within one genre
// contribute to its mean. Equal means resolve to the alphabetically earlier
// genre so the result is deterministic.
func (e *Engine) UserTopGenre(userID string) string {
	sums := map[string]float64{}
	counts := map[string]int{}
	for name, obs := range e.ratings {
		rec, ok := e.catalog[name]
		if !ok {
			continue
		}
		for _, o := range obs {
			if o.UserID != userID {
				continue
			}
			sums[rec.Genre] += o.Rating
			counts[rec.Genre]++
		}
	}
	if len(sums) == 0 {
		return ""
	}

	genres := make([]string, 0, len(sums))
	for g := range sums {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	best := ""
	bestAvg := -1.0
	for _, g := range genres {
		if avg := sums[g] / float64(counts[g]); avg > bestAvg {
			bestAvg = avg
			best = g
		}
	}
	return best
}

// RecommendMovies suggests up to three movies from the user's favorite genre
// that the user has not rated yet, most highly rated first. An unknown user
// or one with no rated catalog movies gets an empty result.
func (e *Engine) RecommendMovies(userID string) []string {
	genre := e.UserTopGenre(userID)
	if genre == "" {
		return nil
	}

	rated := map[string]struct{}{}
	for name, obs := range e.ratings {
		for _, o := range obs {
			if o.UserID == userID {
				rated[name] = struct{}{}
				break
			}
		}
	}

	var recs []string
	for _, name := range e.TopMoviesInGenre(candidatePoolSize, genre) {
		if _, ok := rated[name]; ok {
			continue
		}
		recs = append(recs, name)
		if len(recs) == maxRecommendations {
			break
		}
	}
	return recs
}
