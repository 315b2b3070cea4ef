package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/scope"
	"github.com/Skotchmaster/marketplace/internal/validation"
	"github.com/Skotchmaster/marketplace/pkg/config"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events *Events
	// TotalPolicy is config.TotalPolicyTrust or config.TotalPolicyVerify.
	TotalPolicy string
}

// OrderView is the read projection of an order.
type OrderView struct {
	Order        models.Order
	ProducerName string
	HasRating    bool
	RatingScore  *int
}

func (s *OrderService) Create(ctx context.Context, in validation.OrderInput) (*OrderView, error) {
	in, err := validation.Order(in)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.UserByID(ctx, in.ProducerID); err != nil {
			if isNotFound(err) {
				return domain.ErrUnknownProducer
			}
			return storeErr(err, "producer")
		}

		ids := make([]uuid.UUID, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.ProductID)
		}
		products, err := tx.ProductsByID(ctx, ids)
		if err != nil {
			return storeErr(err, "products")
		}

		items, sum, err := snapshotItems(in, products)
		if err != nil {
			return err
		}
		if s.TotalPolicy == config.TotalPolicyVerify && !in.TotalPrice.Equal(sum) {
			return domain.ErrTotalMismatch
		}

		order, err = tx.CreateOrder(ctx, &models.Order{
			ProducerID:  in.ProducerID,
			ClientName:  in.ClientName,
			ClientPhone: in.ClientPhone,
			ClientEmail: in.ClientEmail,
			Status:      domain.OrderPending,
			TotalPrice:  in.TotalPrice,
			Items:       items,
		})
		return storeErr(err, "order")
	})
	if err != nil {
		return nil, err
	}

	s.Events.emit(ctx, Event{
		Type:       EventOrderCreated,
		ProducerID: order.ProducerID,
		OrderID:    order.ID,
		Status:     order.Status,
	})

	views, err := s.project(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// snapshotItems copies name and price of every product into the order lines.
// Products must exist and belong to the ordering producer.
func snapshotItems(in validation.OrderInput, products map[uuid.UUID]models.Product) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(in.Items))
	sum := decimal.Zero
	for _, line := range in.Items {
		prod, ok := products[line.ProductID]
		if !ok || prod.OwnerID != in.ProducerID {
			return nil, sum, domain.ErrUnknownProduct
		}
		subtotal := prod.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		if !validation.FitsMoney(subtotal) {
			return nil, sum, domain.Validationf("subtotal of %q is too large", prod.Name)
		}
		items = append(items, models.OrderItem{
			ProductID:   prod.ID,
			ProductName: prod.Name,
			Quantity:    line.Quantity,
			UnitPrice:   prod.Price,
			Subtotal:    subtotal,
		})
		sum = sum.Add(subtotal)
	}
	return items, sum, nil
}

// UpdateStatus overwrites the status of an order owned by actor. Any of the
// four statuses may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.OrderStatus) (*OrderView, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrLoginRequired
	}

	var producerID uuid.UUID
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		order, err := tx.LockOrder(ctx, id)
		if err != nil {
			return storeErr(err, "order")
		}
		if err := scope.CanMutateOrder(actor, order); err != nil {
			return err
		}
		if _, err := validation.OrderStatus(status); err != nil {
			return err
		}
		producerID = order.ProducerID
		return storeErr(tx.UpdateOrderStatus(ctx, order.ID, status), "order")
	})
	if err != nil {
		return nil, err
	}

	s.Events.emit(ctx, Event{
		Type:       EventOrderStatusChanged,
		ProducerID: producerID,
		OrderID:    id,
		Status:     status,
	})
	return s.Get(ctx, actor, id)
}

func (s *OrderService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*OrderView, error) {
	sc, err := scope.OwnedOrder(actor)
	if err != nil {
		return nil, err
	}
	order, err := s.Repo.GetOrder(ctx, sc, id)
	if err != nil {
		return nil, storeErr(err, "order")
	}
	views, err := s.project(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// List returns orders by client phone when one is given, otherwise the
// actor's own orders. Anonymous callers without a phone get nothing.
func (s *OrderService) List(ctx context.Context, actor domain.Actor, clientPhone string, offset, limit int) (int64, []OrderView, error) {
	total, orders, err := s.Repo.ListOrders(ctx, scope.OrderListing(actor, clientPhone), offset, limit)
	if err != nil {
		return 0, nil, storeErr(err, "orders")
	}
	views, err := s.project(ctx, orders)
	if err != nil {
		return 0, nil, err
	}
	return total, views, nil
}

func (s *OrderService) project(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	seen := make(map[uuid.UUID]struct{}, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.ProducerID]; !ok {
			seen[o.ProducerID] = struct{}{}
			ids = append(ids, o.ProducerID)
		}
	}
	names, err := s.Repo.ProfileNames(ctx, ids)
	if err != nil {
		return nil, storeErr(err, "producers")
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := OrderView{Order: o, ProducerName: names[o.ProducerID]}
		if o.Rating != nil && o.Rating.ID != uuid.Nil {
			score := o.Rating.Score
			v.HasRating = true
			v.RatingScore = &score
		}
		views = append(views, v)
	}
	return views, nil
}
