package http

import (
	"net/http"
	"strconv"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewLocker struct {
	PortID int `json:"portId"`
}

type LockerStatusChange struct {
	Status            string  `json:"status"`
	MaintenanceReason string  `json:"maintenanceReason"`
	ReservedOrderID   *string `json:"reservedOrderId"`
}

type BoxAssignment struct {
	BoxID string `json:"boxId"`
}

type LockerCount struct {
	PortID int   `json:"portId"`
	Count  int64 `json:"count"`
}

// GetLockers handles GET /api/v1/lockers?portId=&status=.
func (s *Server) GetLockers(c echo.Context) error {
	portID, err := queryInt(c, "portId")
	if err != nil {
		return s.badRequest(c, "portId must be an integer")
	}
	query, err := queries.NewGetLockersQuery(portID, queryText(c, "status"))
	if err != nil {
		return s.fail(c, err)
	}

	lockers, err := s.h.GetLockers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(lockers, toLocker))
}

// AddLocker handles POST /api/v1/lockers.
func (s *Server) AddLocker(c echo.Context) error {
	var body NewLocker
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewAddLockerCommand(body.PortID)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.AddLocker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toLocker(created))
}

// UpdateLockerStatus handles PUT /api/v1/lockers/:id/status.
func (s *Server) UpdateLockerStatus(c echo.Context) error {
	var body LockerStatusChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateLockerStatusCommand(c.Param("id"), body.Status, body.MaintenanceReason, body.ReservedOrderID)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateLockerStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLocker(updated))
}

// AssignBoxToLocker handles PUT /api/v1/lockers/:id/box.
func (s *Server) AssignBoxToLocker(c echo.Context) error {
	var body BoxAssignment
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewAssignBoxToLockerCommand(c.Param("id"), body.BoxID)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.AssignBoxToLocker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLocker(updated))
}

// ReleaseLocker handles POST /api/v1/lockers/:id/release.
func (s *Server) ReleaseLocker(c echo.Context) error {
	cmd, err := commands.NewReleaseLockerCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.ReleaseLocker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLocker(updated))
}

// DeleteLocker handles DELETE /api/v1/lockers/:id.
func (s *Server) DeleteLocker(c echo.Context) error {
	cmd, err := commands.NewDeleteLockerCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteLocker.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}

// CountLockersByPort handles GET /api/v1/ports/:id/lockers/count.
func (s *Server) CountLockersByPort(c echo.Context) error {
	portID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.badRequest(c, "port id must be an integer")
	}

	count, err := s.h.CountLockersByPort.Handle(c.Request().Context(), queries.NewCountLockersByPortQuery(portID))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, LockerCount{PortID: portID, Count: count})
}
