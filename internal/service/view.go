package service

import "daily-dish/internal/domain"

// toView projects a stored record into its client-facing shape, computing
// the aggregate rating and the requesting user's own rating if present.
func toView(record domain.DishRecord, userID string) domain.DishView {
	view := domain.DishView{
		Name:          record.Name,
		ImagePath:     record.ImagePath,
		Description:   record.Description,
		AverageRating: Average(ratingValues(record.Ratings)),
	}
	if userID != "" {
		if own, ok := record.Ratings[userID]; ok {
			view.YourRating = &own
		}
	}
	return view
}

func ratingValues(ratings map[string]float64) []float64 {
	values := make([]float64, 0, len(ratings))
	for _, v := range ratings {
		values = append(values, v)
	}
	return values
}
