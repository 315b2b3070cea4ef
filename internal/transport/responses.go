package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/util"
)

// Money renders an amount with exactly two fractional digits.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PageResponse[T any] struct {
	Data []T       `json:"data"`
	Meta util.Meta `json:"meta"`
}

func NewPage[S, T any](items []S, conv func(S) T, page util.Page, total int64) PageResponse[T] {
	data := make([]T, 0, len(items))
	for _, it := range items {
		data = append(data, conv(it))
	}
	return PageResponse[T]{Data: data, Meta: page.Meta(total)}
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsAdmin     bool      `json:"is_admin"`
}

type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Stock     int       `json:"stock"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Category:  p.Category,
		Status:    string(p.Status),
		Stock:     p.Stock,
		Price:     Money(p.Price),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileResponse(p models.ProducerProfile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		Phone:     p.Phone,
		City:      p.City,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ProfileDetailResponse struct {
	ProfileResponse
	Categories    []string `json:"categories"`
	AverageRating float64  `json:"average_rating"`
	RatingCount   int64    `json:"rating_count"`
}

func NewProfileDetailResponse(v *service.ProfileView) ProfileDetailResponse {
	categories := v.Categories
	if categories == nil {
		categories = []string{}
	}
	return ProfileDetailResponse{
		ProfileResponse: NewProfileResponse(v.Profile),
		Categories:      categories,
		AverageRating:   v.AverageRating,
		RatingCount:     v.RatingCount,
	}
}

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Subtotal    string    `json:"subtotal"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	ProducerID   uuid.UUID           `json:"producer_id"`
	ProducerName string              `json:"producer_name"`
	ClientName   string              `json:"client_name"`
	ClientPhone  string              `json:"client_phone"`
	ClientEmail  string              `json:"client_email"`
	Status       string              `json:"status"`
	TotalPrice   string              `json:"total_price"`
	Items        []OrderItemResponse `json:"items"`
	HasRating    bool                `json:"has_rating"`
	RatingScore  *int                `json:"rating_score"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewOrderResponse(v service.OrderView) OrderResponse {
	o := v.Order
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   Money(it.UnitPrice),
			Subtotal:    Money(it.Subtotal),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		ProducerID:   o.ProducerID,
		ProducerName: v.ProducerName,
		ClientName:   o.ClientName,
		ClientPhone:  o.ClientPhone,
		ClientEmail:  o.ClientEmail,
		Status:       string(o.Status),
		TotalPrice:   Money(o.TotalPrice),
		Items:        items,
		HasRating:    v.HasRating,
		RatingScore:  v.RatingScore,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

type RatingResponse struct {
	ID          uuid.UUID `json:"id"`
	ProducerID  uuid.UUID `json:"producer_id"`
	OrderID     uuid.UUID `json:"order_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Score       int       `json:"score"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRatingResponse(r models.Rating) RatingResponse {
	return RatingResponse{
		ID:          r.ID,
		ProducerID:  r.ProducerID,
		OrderID:     r.OrderID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Score:       r.Score,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}
