// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Dates are kept as dd/mm/yyyy text; article_name is indexed for price reuse lookups.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CreationDate    string          `gorm:"type:varchar(10);not null"`
	CancelationDate *string         `gorm:"type:varchar(10)"`
	CustomerName    string          `gorm:"type:text;not null"`
	ArticleName     string          `gorm:"type:text;not null;index"`
	Price           decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity        int             `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID lets the database assign the next identifier.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cancelationDate *string
	if d := aggregate.CancelationDate(); d != nil {
		s := d.String()
		cancelationDate = &s
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		CreationDate:    aggregate.CreationDate().String(),
		CancelationDate: cancelationDate,
		CustomerName:    aggregate.CustomerName(),
		ArticleName:     aggregate.ArticleName(),
		Price:           aggregate.Price().Amount(),
		Quantity:        aggregate.Quantity(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	creationDate, err := kernel.ParseDate(dto.CreationDate)
	if err != nil {
		return nil, err
	}

	var cancelationDate *kernel.Date
	if dto.CancelationDate != nil {
		d, dateErr := kernel.ParseDate(*dto.CancelationDate)
		if dateErr != nil {
			return nil, dateErr
		}
		cancelationDate = &d
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		creationDate,
		cancelationDate,
		dto.CustomerName,
		dto.ArticleName,
		price,
		dto.Quantity,
	)
}
