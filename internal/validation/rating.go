package validation

import (
	"github.com/google/uuid"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

type RatingInput struct {
	OrderID     uuid.UUID
	Score       int
	Comment     string
	ClientName  string
	ClientPhone string
}

func ratingOrder(r RatingInput) (RatingInput, error) {
	if r.OrderID == uuid.Nil {
		return r, domain.Validationf("order_id is required")
	}
	return r, nil
}

func ratingClient(r RatingInput) (RatingInput, error) {
	var err error
	if r.ClientName, err = requireText("client_name", r.ClientName, 255); err != nil {
		return r, err
	}
	if r.ClientPhone, err = requireText("client_phone", r.ClientPhone, 20); err != nil {
		return r, err
	}
	r.Comment, err = optionalText("comment", r.Comment, 2000)
	return r, err
}

// Rating checks the request shape only. Score bounds are checked by the
// rating gate after eligibility, see RatingScore.
func Rating(r RatingInput) (RatingInput, error) {
	return Apply(r, ratingOrder, ratingClient)
}

func RatingScore(score int) error {
	if score < domain.MinScore || score > domain.MaxScore {
		return domain.ErrScoreOutOfRange
	}
	return nil
}
