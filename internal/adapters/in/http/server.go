package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ShipmentReader is the read side dependency of the HTTP layer.
// Satisfied by queries.GetShipmentByNumberQueryHandler.
type ShipmentReader interface {
	Handle(ctx context.Context, query queries.GetShipmentByNumberQuery) (*queries.GetShipmentByNumberQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	getShipmentByNumberHandler ShipmentReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	getShipmentByNumberHandler ShipmentReader,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		getShipmentByNumberHandler:  getShipmentByNumberHandler,
	}
}

// CreateShipment handles POST /api/shipments - registers a shipment for a placed order.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request servers.CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    "Validation",
			Message: "Invalid request body",
		})
	}

	items := make([]shipment.Item, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, shipment.NewItem(item.Product, item.Quantity))
	}

	// Build the command even when the address is invalid so one round trip
	// reports every offending field, not just the first one.
	address, addressErr := kernel.NewAddress(request.Address.Street, request.Address.City, request.Address.Zip)
	cmd, cmdErr := commands.NewCreateShipmentCommand(
		request.OrderId,
		address,
		request.Carrier,
		request.ReceiverEmail,
		items,
	)
	if err := errors.Join(addressErr, cmdErr); err != nil {
		return validationProblem(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    "Conflict",
				Message: fmt.Sprintf("Shipment for order '%s' is already created", request.OrderId),
			})
		}
		if errors.Is(err, errs.ErrValidation) {
			return validationProblem(ctx, err)
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    "Internal",
			Message: "Failed to create shipment",
		})
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(created))
}

// UpdateShipmentStatus handles POST /api/shipments/update-status/{shipmentNumber}.
func (s *Server) UpdateShipmentStatus(ctx echo.Context, shipmentNumber string) error {
	var request servers.UpdateShipmentStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    "Validation",
			Message: "Invalid request body",
		})
	}

	// Unrecognized status names never reach the business logic.
	status, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    "Validation",
			Message: fmt.Sprintf("'%s' is not a valid shipment status", request.Status),
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentNumber, status)
	if err != nil {
		return validationProblem(ctx, err)
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    "Shipment.NotFound",
				Message: fmt.Sprintf("Shipment with number '%s' not found", shipmentNumber),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    "Internal",
			Message: "Failed to update shipment status",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentByNumber handles GET /api/shipments/{shipmentNumber}.
func (s *Server) GetShipmentByNumber(ctx echo.Context, shipmentNumber string) error {
	query, err := queries.NewGetShipmentByNumberQuery(shipmentNumber)
	if err != nil {
		return validationProblem(ctx, err)
	}

	snapshot, err := s.getShipmentByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    "Internal",
			Message: "Failed to retrieve shipment",
		})
	}

	if snapshot == nil {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    "Shipment.NotFound",
			Message: fmt.Sprintf("Shipment with number '%s' not found", shipmentNumber),
		})
	}

	items := make([]servers.ShipmentItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, servers.ShipmentItem{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, servers.ShipmentResponse{
		Number:  snapshot.Number,
		OrderId: snapshot.OrderID,
		Address: servers.Address{
			Street: snapshot.Address.Street(),
			City:   snapshot.Address.City(),
			Zip:    snapshot.Address.Zip(),
		},
		Carrier:       snapshot.Carrier,
		ReceiverEmail: snapshot.ReceiverEmail,
		Status:        snapshot.Status.String(),
		Items:         items,
	})
}

// validationProblem renders a field validation failure. Constructors join one
// error per violated field; the full set goes into the errors dictionary while
// the first violation drives the top-level code and message.
func validationProblem(ctx echo.Context, err error) error {
	fieldErrors := flattenFieldErrors(err)
	if len(fieldErrors) == 0 {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    "Validation",
			Message: err.Error(),
		})
	}

	problems := make(map[string][]string, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		problems[fieldErr.Field] = append(problems[fieldErr.Field], fieldErr.Message)
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    fieldErrors[0].Field,
		Message: fieldErrors[0].Message,
		Errors:  &problems,
	})
}

// flattenFieldErrors walks a joined error tree and collects every field
// validation error in the order the constructors reported them.
func flattenFieldErrors(err error) []*errs.ValidationError {
	if err == nil {
		return nil
	}

	if fieldErr, ok := err.(*errs.ValidationError); ok {
		return []*errs.ValidationError{fieldErr}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var collected []*errs.ValidationError
		for _, inner := range joined.Unwrap() {
			collected = append(collected, flattenFieldErrors(inner)...)
		}
		return collected
	}

	return flattenFieldErrors(errors.Unwrap(err))
}

func shipmentToResponse(aggregate *shipment.Shipment) servers.ShipmentResponse {
	aggregateItems := aggregate.Items()
	items := make([]servers.ShipmentItem, 0, len(aggregateItems))
	for _, item := range aggregateItems {
		items = append(items, servers.ShipmentItem{
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}

	return servers.ShipmentResponse{
		Number:  aggregate.Number(),
		OrderId: aggregate.OrderID(),
		Address: servers.Address{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Zip:    aggregate.Address().Zip(),
		},
		Carrier:       aggregate.Carrier(),
		ReceiverEmail: aggregate.ReceiverEmail(),
		Status:        aggregate.Status().String(),
		Items:         items,
	}
}
