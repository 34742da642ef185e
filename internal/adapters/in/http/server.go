package http

import (
	"context"
	"net/http"

	"shasanseva/internal/core/application/usecases/commands"
	"shasanseva/internal/core/application/usecases/queries"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Use cases the server drives.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
	}

	TransitionOrderStatusHandler interface {
		Handle(
			ctx context.Context,
			cmd commands.TransitionOrderStatusCommand,
		) (commands.TransitionOrderStatusResult, error)
	}

	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (commands.CompleteOrderResult, error)
	}

	UpdateAdminNotesHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateAdminNotesCommand) (*order.Order, error)
	}

	AddProofHandler interface {
		Handle(ctx context.Context, cmd commands.AddProofCommand) (order.Proof, error)
	}

	ListAdminQueueHandler interface {
		Handle(ctx context.Context, query queries.ListAdminQueueQuery) (queries.ListAdminQueueQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder           CreateOrderHandler
	ConfirmPayment        ConfirmPaymentHandler
	TransitionOrderStatus TransitionOrderStatusHandler
	CompleteOrder         CompleteOrderHandler
	UpdateAdminNotes      UpdateAdminNotesHandler
	AddProof              AddProofHandler
	ListAdminQueue        ListAdminQueueHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body CreateOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	schemeID, err := toID("schemeId", body.SchemeID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), principal.ID, schemeID)
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:       result.OrderID.Bytes(),
		Status:        result.Status.String(),
		PaymentAmount: result.PaymentAmount.String(),
	})
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment/confirm.
func (s *Server) ConfirmPayment(ctx echo.Context, orderID uuid.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body ConfirmPaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(id, principal.ID, body.GatewayOrderID, body.PaymentID, body.Signature)
	if err != nil {
		return err
	}

	o, err := s.handlers.ConfirmPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{OrderID: o.ID().Bytes(), Status: o.Status().String()})
}

// ListAdminOrders handles GET /api/v1/admin/orders.
func (s *Server) ListAdminOrders(ctx echo.Context, params ListAdminOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, raw := range *params.Status {
			status, err := order.ParseStatus(raw)
			if err != nil {
				return err
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListAdminQueueQuery(statuses, params.Page, params.Limit)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListAdminQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]AdminQueueItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toAdminQueueItem(item))
	}

	return ctx.JSON(http.StatusOK, AdminQueuePage{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// TransitionOrderStatus handles PATCH /api/v1/admin/orders/{orderId}/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body TransitionOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	id, err := toID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, status, actor, body.Notes)
	if err != nil {
		return err
	}

	result, err := s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, TransitionOrderStatusResponse{
		OrderID:    result.OrderID.Bytes(),
		Status:     result.Status.String(),
		AssignedTo: optionalID(result.AssignedTo),
	})
}

// CompleteOrder handles POST /api/v1/admin/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	id, err := toID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(id, actor)
	if err != nil {
		return err
	}

	result, err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{OrderID: result.OrderID.Bytes(), Status: result.Status.String()})
}

// UpdateAdminNotes handles PATCH /api/v1/admin/orders/{orderId}/notes.
func (s *Server) UpdateAdminNotes(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body UpdateAdminNotesRequest
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAdminNotesCommand(id, actor, body.Notes)
	if err != nil {
		return err
	}

	o, err := s.handlers.UpdateAdminNotes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, AdminNotesResponse{OrderID: o.ID().Bytes(), AdminNotes: o.AdminNotes()})
}

// AddProof handles POST /api/v1/admin/orders/{orderId}/proofs.
func (s *Server) AddProof(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body AddProofRequest
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddProofCommand(
		id, actor, order.ProofType(body.ProofType), body.FileKey, body.FileName, body.Description,
	)
	if err != nil {
		return err
	}

	proof, err := s.handlers.AddProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, ProofResponse{
		ProofID:     proof.ID.Bytes(),
		OrderID:     proof.OrderID.Bytes(),
		ProofType:   string(proof.Type),
		FileKey:     proof.FileKey,
		FileName:    proof.FileName,
		Description: proof.Description,
		CreatedAt:   proof.CreatedAt,
	})
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func toAdminQueueItem(item queries.AdminQueueItem) AdminQueueItem {
	return AdminQueueItem{
		OrderID:       item.OrderID.Bytes(),
		Status:        item.Status.String(),
		AssignedTo:    optionalID(item.AssignedTo),
		PaymentAmount: item.PaymentAmount.String(),
		PaidAt:        item.PaidAt,
		AdminNotes:    item.AdminNotes,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		User: QueueUser{
			ID:    item.UserID.Bytes(),
			Name:  item.UserName,
			Phone: item.UserPhone,
		},
		Scheme: QueueScheme{
			ID:   item.SchemeID.Bytes(),
			Name: item.SchemeName,
		},
	}
}

func toID(param string, raw uuid.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
