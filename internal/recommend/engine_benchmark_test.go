package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/reelrank/reelrank/internal/domain"
)

func buildBenchEngine(movies, ratingsPerMovie int) *Engine {
	rnd := rand.New(rand.NewSource(1))
	genres := []string{"drama", "comedy", "action", "western", "sci-fi"}

	catalog := make(domain.Catalog, movies)
	store := make(domain.RatingStore, movies)
	for i := 0; i < movies; i++ {
		name := fmt.Sprintf("movie-%04d", i)
		catalog[name] = domain.MovieRecord{
			Name:  name,
			ID:    fmt.Sprintf("%d", i),
			Genre: genres[i%len(genres)],
		}
		obs := make([]domain.RatingObservation, 0, ratingsPerMovie)
		for j := 0; j < ratingsPerMovie; j++ {
			obs = append(obs, domain.RatingObservation{
				UserID: fmt.Sprintf("user-%03d", j),
				Rating: float64(rnd.Intn(11)) / 2.0,
			})
		}
		store[name] = obs
	}
	return New(catalog, store)
}

func BenchmarkTopMovies(b *testing.B) {
	e := buildBenchEngine(1000, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := e.TopMovies(10); len(got) != 10 {
			b.Fatalf("unexpected result size %d", len(got))
		}
	}
}

func BenchmarkRecommendMovies(b *testing.B) {
	e := buildBenchEngine(1000, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.RecommendMovies("user-001")
	}
}
