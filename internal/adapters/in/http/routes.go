package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of internal/api/openapi.json.
type ServerInterface interface {
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (POST /api/v1/orders/{orderId}/payment/confirm)
	ConfirmPayment(ctx echo.Context, orderID uuid.UUID) error
	// (GET /api/v1/admin/orders)
	ListAdminOrders(ctx echo.Context, params ListAdminOrdersParams) error
	// (PATCH /api/v1/admin/orders/{orderId}/status)
	TransitionOrderStatus(ctx echo.Context, orderID uuid.UUID) error
	// (POST /api/v1/admin/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderID uuid.UUID) error
	// (PATCH /api/v1/admin/orders/{orderId}/notes)
	UpdateAdminNotes(ctx echo.Context, orderID uuid.UUID) error
	// (POST /api/v1/admin/orders/{orderId}/proofs)
	AddProof(ctx echo.Context, orderID uuid.UUID) error
}

// ListAdminOrdersParams defines parameters for ListAdminOrders.
type ListAdminOrdersParams struct {
	Status *[]string
	Page   *int
	Limit  *int
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ConfirmPayment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmPayment(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListAdminOrders(ctx echo.Context) error {
	var params ListAdminOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListAdminOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.TransitionOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateAdminNotes(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateAdminNotes(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddProof(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddProof(ctx, orderID)
}

func bindOrderID(ctx echo.Context) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.UUID{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderID, nil
}

// RegisterHandlers mounts the user routes behind userMW and the admin routes
// behind adminMW.
func RegisterHandlers(
	router *echo.Echo,
	si ServerInterface,
	userMW []echo.MiddlewareFunc,
	adminMW []echo.MiddlewareFunc,
) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	orders := router.Group("/api/v1/orders", userMW...)
	orders.POST("", wrapper.CreateOrder)
	orders.POST("/:orderId/payment/confirm", wrapper.ConfirmPayment)

	adminOrders := router.Group("/api/v1/admin/orders", adminMW...)
	adminOrders.GET("", wrapper.ListAdminOrders)
	adminOrders.PATCH("/:orderId/status", wrapper.TransitionOrderStatus)
	adminOrders.POST("/:orderId/complete", wrapper.CompleteOrder)
	adminOrders.PATCH("/:orderId/notes", wrapper.UpdateAdminNotes)
	adminOrders.POST("/:orderId/proofs", wrapper.AddProof)
}
