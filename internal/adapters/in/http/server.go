package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sales/internal/adapters/in/http/servers"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidDates    = "Dates should be in the format dd/mm/yyyy"
	msgNotFound        = "Sales order not found"
	msgAlreadyCanceled = "The sales order has already been canceled"
	msgCanceled        = "Sales order canceled successfully"
	msgStorageFailure  = "Storage is unavailable, try again later"
	msgInternal        = "Internal server error"
)

type (
	CreateOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrdersCommand) ([]*order.Order, error)
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrdersHandler CreateOrdersHandler
	cancelOrderHandler  CancelOrderHandler

	// Query handlers
	getOrderHandler   GetOrderHandler
	listOrdersHandler ListOrdersHandler

	logger *logrus.Entry
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrdersHandler CreateOrdersHandler,
	cancelOrderHandler CancelOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
	logger *logrus.Entry,
) *Server {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{
		createOrdersHandler: createOrdersHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		logger:              logger.WithField("component", "http"),
	}
}

// ListOrders handles GET /orders - lists orders, optionally within a date range.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(deref(params.StartDate), deref(params.EndDate))
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, 0, len(views))
	for _, v := range views {
		response = append(response, toOrderRecord(v))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrders handles POST /orders - creates a batch of orders.
func (s *Server) CreateOrders(ctx echo.Context) error {
	payloads, err := decodeOrderPayloads(ctx.Request().Body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrdersCommand(payloads)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, 0, len(created))
	for _, o := range created {
		response = append(response, toOrderRecord(queries.NewOrderView(o)))
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrder handles GET /orders/{id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderRecord(view))
}

// CancelOrder handles DELETE /orders/{id} - cancels one order.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if _, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: msgCanceled})
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	// Storage errors first: their cause may wrap any sentinel below.
	switch {
	case errors.Is(err, errs.ErrStorageIsUnavailable):
		s.logger.WithError(err).WithField("path", ctx.Path()).Error("storage failure")
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{Error: msgStorageFailure})
	case errors.Is(err, commands.ErrInvalidFormat),
		errors.Is(err, commands.ErrMissingField),
		errors.Is(err, commands.ErrInvalidType),
		errors.Is(err, commands.ErrInvalidValue):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: err.Error()})
	case errors.Is(err, queries.ErrInvalidDateFormat):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: msgInvalidDates})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: msgNotFound})
	case errors.Is(err, order.ErrOrderIsAlreadyCanceled):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: msgAlreadyCanceled})
	default:
		s.logger.WithError(err).WithField("path", ctx.Path()).Error("unexpected error")
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: msgInternal})
	}
}

// decodeOrderPayloads reads a body holding exactly one JSON array of objects.
// Elements that are not objects decode to nil payloads, which validation
// rejects as a format error.
func decodeOrderPayloads(body io.Reader) ([]commands.OrderPayload, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", commands.ErrInvalidFormat, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the list", commands.ErrInvalidFormat)
	}

	payloads := make([]commands.OrderPayload, 0, len(items))
	for _, raw := range items {
		var p commands.OrderPayload
		itemDec := json.NewDecoder(bytes.NewReader(raw))
		itemDec.UseNumber()
		if err := itemDec.Decode(&p); err != nil {
			p = nil
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

func toOrderRecord(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:              v.ID,
		CreationDate:    v.CreationDate,
		CancelationDate: v.CancelationDate,
		CustomerName:    v.CustomerName,
		ArticleName:     v.ArticleName,
		Price:           v.Price.InexactFloat64(),
		Quantity:        v.Quantity,
		Subtotal:        v.Subtotal.InexactFloat64(),
		Iva:             v.Tax.InexactFloat64(),
		Total:           v.Total.InexactFloat64(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
