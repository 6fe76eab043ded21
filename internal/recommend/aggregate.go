package recommend

import "github.com/reelrank/reelrank/internal/domain"

// AverageRating returns the mean rating for a movie. The second return is
// false when the movie has no recorded ratings; such a movie never ranks,
// it is absent rather than scored zero.
func (e *Engine) AverageRating(name string) (float64, bool) {
	obs := e.ratings[domain.Normalize(name)]
	if len(obs) == 0 {
		return 0, false
	}
	var sum float64
	for _, o := range obs {
		sum += o.Rating
	}
	return sum / float64(len(obs)), true
}

// GenreAverage returns the mean of the per-movie average ratings within a
// genre: the average of averages, not a pooled mean over raw ratings.
// Unrated movies do not count toward the genre at all, and a genre with no
// rated movies has no average.
func (e *Engine) GenreAverage(genre string) (float64, bool) {
	genre = domain.Normalize(genre)
	var sum float64
	var count int
	for name, rec := range e.catalog {
		if rec.Genre != genre {
			continue
		}
		avg, ok := e.AverageRating(name)
		if !ok {
			continue
		}
		sum += avg
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
