package domain

// Rating bounds. Every stored rating stays inside them, no exceptions.
const (
	MinRating = 400
	MaxRating = 2400
)

// Rating is a per-squad skill value. Arithmetic clamps to the bounds
// instead of failing.
type Rating int

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return 0, ErrRatingOutOfRange
	}
	return Rating(v), nil
}

func (r Rating) Add(delta int) Rating {
	v := int(r) + delta
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return Rating(v)
}

func (r Rating) Int() int {
	return int(r)
}
