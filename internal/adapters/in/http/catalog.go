package http

import (
	"net/http"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewClient struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Specialty string `json:"specialty"`
	Study     string `json:"study"`
	Email     string `json:"email"`
}

type ClientChange struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Specialty *string `json:"specialty"`
	Study     *string `json:"study"`
	Email     *string `json:"email"`
}

type NewProduct struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	StockAvailable int     `json:"stockAvailable"`
	WeightKg       float64 `json:"weightKg"`
	UnitPrice      float64 `json:"unitPrice"`
}

type ProductChange struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	StockAvailable *int     `json:"stockAvailable"`
	WeightKg       *float64 `json:"weightKg"`
	UnitPrice      *float64 `json:"unitPrice"`
}

// GetClients handles GET /api/v1/clients?id=&name=.
func (s *Server) GetClients(c echo.Context) error {
	query, err := queries.NewGetClientsQuery(queryText(c, "id"), queryText(c, "name"))
	if err != nil {
		return s.fail(c, err)
	}

	clients, err := s.h.GetClients.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(clients, toClient))
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(c echo.Context) error {
	var body NewClient
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCreateClientCommand(body.Name, body.Type, body.Specialty, body.Study, body.Email)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toClient(created))
}

// UpdateClient handles PATCH /api/v1/clients/:id.
func (s *Server) UpdateClient(c echo.Context) error {
	var body ClientChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateClientCommand(
		c.Param("id"), body.Name, body.Type, body.Specialty, body.Study, body.Email,
	)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toClient(updated))
}

// DeleteClient handles DELETE /api/v1/clients/:id.
func (s *Server) DeleteClient(c echo.Context) error {
	cmd, err := commands.NewDeleteClientCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteClient.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}

// GetProducts handles GET /api/v1/products?id=&name=.
func (s *Server) GetProducts(c echo.Context) error {
	query, err := queries.NewGetProductsQuery(queryText(c, "id"), queryText(c, "name"))
	if err != nil {
		return s.fail(c, err)
	}

	products, err := s.h.GetProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(products, toProduct))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var body NewProduct
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCreateProductCommand(
		body.Name, body.Description, body.StockAvailable, body.WeightKg, body.UnitPrice,
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toProduct(created))
}

// UpdateProduct handles PATCH /api/v1/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	var body ProductChange
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewUpdateProductCommand(
		c.Param("id"), body.Name, body.Description, body.StockAvailable, body.WeightKg, body.UnitPrice,
	)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toProduct(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	cmd, err := commands.NewDeleteProductCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	existed, err := s.h.DeleteProduct.Handle(c.Request().Context(), cmd)
	return s.deleted(c, existed, err)
}
