package domain

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pendente"
	OrderAccepted  OrderStatus = "Aceito"
	OrderCancelled OrderStatus = "Cancelado"
	OrderDelivered OrderStatus = "Entregue"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderAccepted, OrderCancelled, OrderDelivered}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type ProductStatus string

const (
	ProductActive   ProductStatus = "Ativo"
	ProductInactive ProductStatus = "Inativo"
)

func (s ProductStatus) Valid() bool {
	return s == ProductActive || s == ProductInactive
}

const (
	MinScore = 1
	MaxScore = 5
)
