// Package servers holds the HTTP contract of the sales service: wire types,
// the server interface, parameter binding and the embedded OpenAPI document.
package servers

// NewOrder is one element of the create request body. The body is validated
// by the application layer, so this type only documents the contract.
type NewOrder struct {
	ArticleName  string  `json:"article_name"`
	CustomerName string  `json:"customer_name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	Id              int64   `json:"id"`
	CreationDate    string  `json:"creation_date"`
	CancelationDate *string `json:"cancelation_date"`
	CustomerName    string  `json:"customer_name"`
	ArticleName     string  `json:"article_name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	Iva             float64 `json:"iva"`
	Total           float64 `json:"total"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *string `form:"end_date,omitempty" json:"end_date,omitempty"`
}
