package dataset

import "github.com/reelrank/reelrank/internal/domain"

// Snapshot bundles the catalog and rating store built from one load so higher
// layers can focus on query logic. Queries never mutate it; reloading data
// produces a fresh Snapshot instead of changing one in place.
type Snapshot struct {
	Catalog domain.Catalog
	Ratings domain.RatingStore
}

// Load builds a Snapshot from the two data files.
func (l *Loader) Load(moviesPath, ratingsPath string) (*Snapshot, error) {
	catalog, err := l.LoadCatalog(moviesPath)
	if err != nil {
		return nil, err
	}
	ratings, err := l.LoadRatings(ratingsPath)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Catalog: catalog, Ratings: ratings}, nil
}
