package http

import (
	"net/http"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewOrder struct {
	ClientID      string      `json:"clientId"`
	Priority      string      `json:"priority"`
	DeliveryPort  string      `json:"deliveryPort"`
	Products      []OrderLine `json:"products"`
	BoxCount      int         `json:"boxCount"`
	TotalWeightKg *float64    `json:"totalWeightKg"`
}

type OrderStatusChange struct {
	Status string `json:"status"`
}

type DeliveredBoxes struct {
	BoxesDelivered int `json:"boxesDelivered"`
}

type NewBox struct {
	OrderID  string  `json:"orderId"`
	ClientID *string `json:"clientId"`
	Number   int     `json:"number"`
	Status   *string `json:"status"`
	Content  string  `json:"content"`
}

type BoxChange struct {
	Number  *int    `json:"number"`
	Status  *string `json:"status"`
	Content *string `json:"content"`
}

// GetOrders handles GET /api/v1/orders?id=&clientId=&status=.
func (s *Server) GetOrders(c echo.Context) error {
	query, err := queries.NewGetOrdersQuery(queryText(c, "id"), queryText(c, "clientId"), queryText(c, "status"))
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrder))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	lines := make([]commands.OrderLineInput, len(body.Products))
	for i, line := range body.Products {
		lines[i] = commands.OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity}
	}
	cmd, err := commands.NewCreateOrderCommand(
		body.ClientID, body.Priority, body.DeliveryPort, lines, body.BoxCount, body.TotalWeightKg,
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(created))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var body OrderStatusChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(c.Param("id"), body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}

// RecordDeliveredBoxes handles PUT /api/v1/orders/:id/delivered-boxes.
func (s *Server) RecordDeliveredBoxes(c echo.Context) error {
	var body DeliveredBoxes
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewRecordDeliveredBoxesCommand(c.Param("id"), body.BoxesDelivered)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.RecordDeliveredBoxes.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteOrder.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}

// GetBoxes handles GET /api/v1/boxes?id=&orderId=&clientId=&status=.
func (s *Server) GetBoxes(c echo.Context) error {
	query, err := queries.NewGetBoxesQuery(
		queryText(c, "id"), queryText(c, "orderId"), queryText(c, "clientId"), queryText(c, "status"),
	)
	if err != nil {
		return s.fail(c, err)
	}

	boxes, err := s.h.GetBoxes.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(boxes, toBox))
}

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(c echo.Context) error {
	var body NewBox
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCreateBoxCommand(body.OrderID, body.ClientID, body.Number, body.Status, body.Content)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toBox(created))
}

// UpdateBox handles PATCH /api/v1/boxes/:id.
func (s *Server) UpdateBox(c echo.Context) error {
	var body BoxChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateBoxCommand(c.Param("id"), body.Number, body.Status, body.Content)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toBox(updated))
}

// DeleteBox handles DELETE /api/v1/boxes/:id.
func (s *Server) DeleteBox(c echo.Context) error {
	cmd, err := commands.NewDeleteBoxCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteBox.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}
