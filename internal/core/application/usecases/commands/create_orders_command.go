package commands

import (
	"errors"
	"slices"

	"sales/internal/pkg/guard"
)

var ErrCreateOrdersCommandIsNotConstructed = errors.New(
	"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
)

// CreateOrdersCommand represents a request to create a batch of sales orders.
// All payloads are validated up front; an invalid one rejects the whole batch.
//
// Example:
//
//	cmd, err := NewCreateOrdersCommand([]OrderPayload{
//	    {"customer_name": "Ana", "article_name": "Pen", "price": json.Number("2.0"), "quantity": json.Number("3")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewCreateOrdersCommandHandler(uowFactory, cache, publisher, metrics, clock, logger)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrdersCommand struct { //nolint:recvcheck //using for validation
	drafts []OrderDraft

	guard guard.ConstructorGuard
}

// NewCreateOrdersCommand validates the payloads and builds the command.
// Returned errors wrap ErrInvalidFormat, ErrMissingField, ErrInvalidType or ErrInvalidValue.
func NewCreateOrdersCommand(payloads []OrderPayload) (CreateOrdersCommand, error) {
	drafts, err := ValidateOrderPayloads(payloads)
	if err != nil {
		return CreateOrdersCommand{}, err
	}

	return CreateOrdersCommand{
		drafts: drafts,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

// Drafts returns the validated orders in submission order.
func (c CreateOrdersCommand) Drafts() []OrderDraft {
	return slices.Clone(c.drafts)
}

// ArticleNames returns the distinct article names of the batch, sorted.
func (c CreateOrdersCommand) ArticleNames() []string {
	names := make([]string, 0, len(c.drafts))
	for _, d := range c.drafts {
		names = append(names, d.ArticleName)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
