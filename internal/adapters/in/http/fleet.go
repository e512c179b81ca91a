package http

import (
	"net/http"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewSeaplane struct {
	ID                string   `json:"id"`
	Model             string   `json:"model"`
	BoxCapacity       *int     `json:"boxCapacity"`
	FuelConsumptionKm *float64 `json:"fuelConsumptionKm"`
	CruiseSpeedKmh    *float64 `json:"cruiseSpeedKmh"`
	Status            string   `json:"status"`
	PortID            *int     `json:"portId"`
}

type SeaplaneChange struct {
	Model             *string  `json:"model"`
	BoxCapacity       *int     `json:"boxCapacity"`
	FuelConsumptionKm *float64 `json:"fuelConsumptionKm"`
	CruiseSpeedKmh    *float64 `json:"cruiseSpeedKmh"`
	Status            *string  `json:"status"`
}

type FlightAssignment struct {
	DeparturePort string `json:"departurePort"`
	ArrivalPort   string `json:"arrivalPort"`
}

// GetSeaplanes handles GET /api/v1/seaplanes?id=.
func (s *Server) GetSeaplanes(c echo.Context) error {
	fleet, err := s.h.GetSeaplanes.Handle(c.Request().Context(), queries.NewGetSeaplanesQuery(queryText(c, "id")))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(fleet, toSeaplane))
}

// CreateSeaplane handles POST /api/v1/seaplanes.
func (s *Server) CreateSeaplane(c echo.Context) error {
	var body NewSeaplane
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCreateSeaplaneCommand(
		body.ID, body.Model, body.BoxCapacity, body.FuelConsumptionKm, body.CruiseSpeedKmh, body.Status, body.PortID,
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateSeaplane.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toSeaplane(created))
}

// UpdateSeaplane handles PATCH /api/v1/seaplanes/:id.
func (s *Server) UpdateSeaplane(c echo.Context) error {
	var body SeaplaneChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateSeaplaneCommand(
		c.Param("id"), body.Model, body.BoxCapacity, body.FuelConsumptionKm, body.CruiseSpeedKmh, body.Status,
	)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateSeaplane.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSeaplane(updated))
}

// AssignFlight handles POST /api/v1/seaplanes/:id/flight.
func (s *Server) AssignFlight(c echo.Context) error {
	var body FlightAssignment
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewAssignFlightCommand(c.Param("id"), body.DeparturePort, body.ArrivalPort)
	if err != nil {
		return s.fail(c, err)
	}

	flying, err := s.h.AssignFlight.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSeaplane(flying))
}

// CompleteFlight handles POST /api/v1/seaplanes/:id/landing.
func (s *Server) CompleteFlight(c echo.Context) error {
	cmd, err := commands.NewCompleteFlightCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	landed, err := s.h.CompleteFlight.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSeaplane(landed))
}

// DeleteSeaplane handles DELETE /api/v1/seaplanes/:id.
func (s *Server) DeleteSeaplane(c echo.Context) error {
	cmd, err := commands.NewDeleteSeaplaneCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteSeaplane.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}

// GetPorts handles GET /api/v1/ports?id=&name=&island=&withLockers=.
func (s *Server) GetPorts(c echo.Context) error {
	id, err := queryInt(c, "id")
	if err != nil {
		return s.badRequest(c, "id must be an integer")
	}
	query := queries.NewGetPortsQuery(id, queryText(c, "name"), queryText(c, "island"), queryBool(c, "withLockers"))

	views, err := s.h.GetPorts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(views, toPort))
}

// GetIslands handles GET /api/v1/islands?name=.
func (s *Server) GetIslands(c echo.Context) error {
	islands, err := s.h.GetIslands.Handle(c.Request().Context(), queries.NewGetIslandsQuery(queryText(c, "name")))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(islands, toIsland))
}
