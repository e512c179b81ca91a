package http

import (
	"net/http"
	"time"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewDelivery struct {
	OrderID            string     `json:"orderId"`
	SeaplaneID         string     `json:"seaplaneId"`
	Route              []string   `json:"route"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture"`
	Boxes              []string   `json:"boxes"`
}

type DeliveryStatusChange struct {
	Status      string  `json:"status"`
	DelayReason string  `json:"delayReason"`
	CurrentPort *string `json:"currentPort"`
}

// GetDeliveries handles GET /api/v1/deliveries?orderId=&seaplaneId=&status=.
func (s *Server) GetDeliveries(c echo.Context) error {
	query, err := queries.NewGetDeliveriesQuery(
		queryText(c, "orderId"), queryText(c, "seaplaneId"), queryText(c, "status"),
	)
	if err != nil {
		return s.fail(c, err)
	}

	deliveries, err := s.h.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(deliveries, toDelivery))
}

// ScheduleDelivery handles POST /api/v1/deliveries.
func (s *Server) ScheduleDelivery(c echo.Context) error {
	var body NewDelivery
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewScheduleDeliveryCommand(
		body.OrderID, body.SeaplaneID, body.Route, body.ScheduledDeparture, body.Boxes,
	)
	if err != nil {
		return s.fail(c, err)
	}

	scheduled, err := s.h.ScheduleDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toDelivery(scheduled))
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	var body DeliveryStatusChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateDeliveryStatusCommand(c.Param("id"), body.Status, body.DelayReason, body.CurrentPort)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDelivery(updated))
}
