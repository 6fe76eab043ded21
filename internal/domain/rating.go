package domain

// RatingObservation is a single user's validated rating for a movie. The
// movie name lives in the RatingStore key, not in the observation itself.
type RatingObservation struct {
	UserID string
	Rating float64
}

// RatingStore maps a normalized movie name to the ratings recorded for it.
// Observation order carries no meaning; aggregation is order-independent.
type RatingStore map[string][]RatingObservation
