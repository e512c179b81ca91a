// Package http exposes the core use cases over JSON/HTTP with echo. Request
// bodies and query strings are turned into commands and queries here; the
// core never sees HTTP types or status codes.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Lockers
	AddLocker          commands.AddLockerCommandHandler
	UpdateLockerStatus commands.UpdateLockerStatusCommandHandler
	AssignBoxToLocker  commands.AssignBoxToLockerCommandHandler
	ReleaseLocker      commands.ReleaseLockerCommandHandler
	DeleteLocker       commands.DeleteLockerCommandHandler
	GetLockers         queries.GetLockersQueryHandler
	CountLockersByPort queries.CountLockersByPortQueryHandler

	// Fleet and topology
	CreateSeaplane commands.CreateSeaplaneCommandHandler
	UpdateSeaplane commands.UpdateSeaplaneCommandHandler
	AssignFlight   commands.AssignFlightCommandHandler
	CompleteFlight commands.CompleteFlightCommandHandler
	DeleteSeaplane commands.DeleteSeaplaneCommandHandler
	GetSeaplanes   queries.GetSeaplanesQueryHandler
	GetPorts       queries.GetPortsQueryHandler
	GetIslands     queries.GetIslandsQueryHandler

	// Orders and boxes
	CreateOrder          commands.CreateOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	RecordDeliveredBoxes commands.RecordDeliveredBoxesCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler
	GetOrders            queries.GetOrdersQueryHandler
	CreateBox            commands.CreateBoxCommandHandler
	UpdateBox            commands.UpdateBoxCommandHandler
	DeleteBox            commands.DeleteBoxCommandHandler
	GetBoxes             queries.GetBoxesQueryHandler

	// Catalog
	CreateClient  commands.CreateClientCommandHandler
	UpdateClient  commands.UpdateClientCommandHandler
	DeleteClient  commands.DeleteClientCommandHandler
	GetClients    queries.GetClientsQueryHandler
	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler
	GetProducts   queries.GetProductsQueryHandler

	// Deliveries
	ScheduleDelivery     commands.ScheduleDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	GetDeliveries        queries.GetDeliveriesQueryHandler
}

// Server adapts HTTP requests to the command and query handlers.
type Server struct {
	h        Handlers
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

func NewServer(handlers Handlers, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	return &Server{
		h:        handlers,
		gatherer: gatherer,
		logger:   logger.With("component", "http"),
	}
}

// Echo builds the router with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.DebugContext(c.Request().Context(), "Request served",
				"method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency, "requestId", v.RequestID)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	api.GET("/lockers", s.GetLockers)
	api.POST("/lockers", s.AddLocker)
	api.PUT("/lockers/:id/status", s.UpdateLockerStatus)
	api.PUT("/lockers/:id/box", s.AssignBoxToLocker)
	api.POST("/lockers/:id/release", s.ReleaseLocker)
	api.DELETE("/lockers/:id", s.DeleteLocker)

	api.GET("/islands", s.GetIslands)
	api.GET("/ports", s.GetPorts)
	api.GET("/ports/:id/lockers/count", s.CountLockersByPort)

	api.GET("/seaplanes", s.GetSeaplanes)
	api.POST("/seaplanes", s.CreateSeaplane)
	api.PATCH("/seaplanes/:id", s.UpdateSeaplane)
	api.POST("/seaplanes/:id/flight", s.AssignFlight)
	api.POST("/seaplanes/:id/landing", s.CompleteFlight)
	api.DELETE("/seaplanes/:id", s.DeleteSeaplane)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/delivered-boxes", s.RecordDeliveredBoxes)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/boxes", s.GetBoxes)
	api.POST("/boxes", s.CreateBox)
	api.PATCH("/boxes/:id", s.UpdateBox)
	api.DELETE("/boxes/:id", s.DeleteBox)

	api.GET("/clients", s.GetClients)
	api.POST("/clients", s.CreateClient)
	api.PATCH("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries", s.ScheduleDelivery)
	api.PUT("/deliveries/:id/status", s.UpdateDeliveryStatus)

	return e
}

// queryText returns a query parameter, nil when absent or blank.
func queryText(c echo.Context, name string) *string {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil
	}
	return &value
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string) (*int, error) {
	value := queryText(c, name)
	if value == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func queryBool(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && value
}
