package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"                  json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null"                    json:"-"`
	Role         string    `gorm:"size:20;not null"            json:"role"`
	CreatedAt    time.Time `                                   json:"created_at"`
}

type ProducerProfile struct {
	ID        uuid.UUID `gorm:"primaryKey"                 json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex;not null"       json:"user_id"`
	Name      string    `gorm:"size:255;not null;index"    json:"name"`
	TaxID     string    `gorm:"size:18;uniqueIndex;not null" json:"tax_id"`
	Phone     string    `gorm:"size:20"                    json:"phone"`
	City      string    `gorm:"size:100"                   json:"city"`
	Address   string    `gorm:"size:255"                   json:"address"`
	CreatedAt time.Time `                                  json:"created_at"`
	UpdatedAt time.Time `                                  json:"updated_at"`
}

type Product struct {
	ID        uuid.UUID            `gorm:"primaryKey"                   json:"id"`
	OwnerID   uuid.UUID            `gorm:"index;not null"               json:"owner_id"`
	Name      string               `gorm:"size:255;not null"            json:"name"`
	Category  string               `gorm:"size:100;not null;index"      json:"category"`
	Status    domain.ProductStatus `gorm:"size:10;not null"             json:"status"`
	Stock     int                  `gorm:"not null;check:stock >= 0"    json:"stock"`
	Price     decimal.Decimal      `gorm:"type:decimal(10,2);not null"  json:"price"`
	CreatedAt time.Time            `gorm:"index"                        json:"created_at"`
	UpdatedAt time.Time            `                                    json:"updated_at"`
}

type Order struct {
	ID          uuid.UUID          `gorm:"primaryKey"                  json:"id"`
	ProducerID  uuid.UUID          `gorm:"index;not null"              json:"producer_id"`
	ClientName  string             `gorm:"size:255;not null"           json:"client_name"`
	ClientPhone string             `gorm:"size:20;not null;index"      json:"client_phone"`
	ClientEmail string             `gorm:"size:254"                    json:"client_email"`
	Status      domain.OrderStatus `gorm:"size:20;not null;index"      json:"status"`
	TotalPrice  decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Items       []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Rating      *Rating            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"rating,omitempty"`
	CreatedAt   time.Time          `gorm:"index"                       json:"created_at"`
	UpdatedAt   time.Time          `                                   json:"updated_at"`
}

// OrderItem keeps a copy of the product name and price taken when the order
// was placed. ProductID is informational only, the product may be gone.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"primaryKey"                  json:"id"`
	OrderID     uuid.UUID       `gorm:"index;not null"              json:"order_id"`
	ProductID   uuid.UUID       `gorm:"index;not null"              json:"product_id"`
	ProductName string          `gorm:"size:255;not null"           json:"product_name"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

type Rating struct {
	ID          uuid.UUID `gorm:"primaryKey"                                json:"id"`
	ProducerID  uuid.UUID `gorm:"index;not null"                            json:"producer_id"`
	OrderID     uuid.UUID `gorm:"uniqueIndex;not null"                      json:"order_id"`
	ClientName  string    `gorm:"size:255;not null"                         json:"client_name"`
	ClientPhone string    `gorm:"size:20;not null"                          json:"client_phone"`
	Score       int       `gorm:"not null;check:score >= 1 AND score <= 5"  json:"score"`
	Comment     string    `gorm:"type:text"                                 json:"comment"`
	CreatedAt   time.Time `gorm:"index"                                     json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (p *ProducerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&ProducerProfile{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Rating{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
