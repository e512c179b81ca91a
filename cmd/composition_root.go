package cmd

import (
	"log/slog"

	apihttp "galapagos/internal/adapters/in/http"
	"galapagos/internal/adapters/out/mongostore/boxrepo"
	"galapagos/internal/adapters/out/mongostore/clientrepo"
	"galapagos/internal/adapters/out/mongostore/deliveryrepo"
	"galapagos/internal/adapters/out/mongostore/lockerrepo"
	"galapagos/internal/adapters/out/mongostore/orderrepo"
	"galapagos/internal/adapters/out/mongostore/productrepo"
	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/adapters/out/neo4jstore/islandrepo"
	"galapagos/internal/adapters/out/neo4jstore/portrepo"
	"galapagos/internal/adapters/out/neo4jstore/seaplanerepo"
	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"
	"galapagos/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

// CompositionRoot owns the repositories and shared services built once per
// process and hands out use case handlers wired to them.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry

	lockers    ports.LockerRepository
	orders     ports.OrderRepository
	boxes      ports.BoxRepository
	clients    ports.ClientRepository
	products   ports.ProductRepository
	deliveries ports.DeliveryRepository

	islands   ports.IslandRepository
	ports     ports.PortRepository
	seaplanes ports.SeaplaneRepository

	metrics     *consistency.Metrics
	coordinator *consistency.Coordinator
	locator     *fleet.Locator
	planner     services.RoutePlanner
}

func NewCompositionRoot(
	config Config,
	logger *slog.Logger,
	db *mongo.Database,
	graph *neo4jstore.Store,
) *CompositionRoot {
	registry := prometheus.NewRegistry()
	metrics := consistency.NewMetrics(registry)

	portRepo := portrepo.NewNeo4jPortRepository(graph)
	seaplaneRepo := seaplanerepo.NewNeo4jSeaplaneRepository(graph)

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: registry,

		lockers:    lockerrepo.NewMongoLockerRepository(db),
		orders:     orderrepo.NewMongoOrderRepository(db),
		boxes:      boxrepo.NewMongoBoxRepository(db),
		clients:    clientrepo.NewMongoClientRepository(db),
		products:   productrepo.NewMongoProductRepository(db),
		deliveries: deliveryrepo.NewMongoDeliveryRepository(db),

		islands:   islandrepo.NewNeo4jIslandRepository(graph),
		ports:     portRepo,
		seaplanes: seaplaneRepo,

		metrics:     metrics,
		coordinator: consistency.NewCoordinator(logger, metrics),
		locator:     fleet.NewLocator(seaplaneRepo, portRepo),
		planner:     services.NewRoutePlanner(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(c.httpHandlers(), c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileLockerCountsCommandHandler(), c.config.ReconcileSchedule, c.logger)
}

func (c *CompositionRoot) CreateReconcileLockerCountsCommandHandler() commands.ReconcileLockerCountsCommandHandler {
	return commands.NewReconcileLockerCountsCommandHandler(c.lockers, c.ports, c.metrics, c.logger)
}

func (c *CompositionRoot) httpHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		AddLocker:          commands.NewAddLockerCommandHandler(c.ports, c.lockers, c.coordinator),
		UpdateLockerStatus: commands.NewUpdateLockerStatusCommandHandler(c.lockers, c.orders),
		AssignBoxToLocker:  commands.NewAssignBoxToLockerCommandHandler(c.lockers, c.boxes),
		ReleaseLocker:      commands.NewReleaseLockerCommandHandler(c.lockers),
		DeleteLocker:       commands.NewDeleteLockerCommandHandler(c.ports, c.lockers, c.coordinator),
		GetLockers:         queries.NewGetLockersQueryHandler(c.lockers),
		CountLockersByPort: queries.NewCountLockersByPortQueryHandler(c.lockers),

		CreateSeaplane: commands.NewCreateSeaplaneCommandHandler(c.seaplanes, c.ports, c.locator),
		UpdateSeaplane: commands.NewUpdateSeaplaneCommandHandler(c.seaplanes, c.locator),
		AssignFlight:   commands.NewAssignFlightCommandHandler(c.seaplanes, c.ports, c.locator),
		CompleteFlight: commands.NewCompleteFlightCommandHandler(c.seaplanes, c.locator),
		DeleteSeaplane: commands.NewDeleteSeaplaneCommandHandler(c.seaplanes, c.deliveries, c.coordinator),
		GetSeaplanes:   queries.NewGetSeaplanesQueryHandler(c.locator),
		GetPorts:       queries.NewGetPortsQueryHandler(c.ports, c.lockers),
		GetIslands:     queries.NewGetIslandsQueryHandler(c.islands),

		CreateOrder: commands.NewCreateOrderCommandHandler(
			c.orders, c.clients, c.products, c.ports, c.coordinator,
		),
		UpdateOrderStatus:    commands.NewUpdateOrderStatusCommandHandler(c.orders),
		RecordDeliveredBoxes: commands.NewRecordDeliveredBoxesCommandHandler(c.orders),
		DeleteOrder:          commands.NewDeleteOrderCommandHandler(c.orders),
		GetOrders:            queries.NewGetOrdersQueryHandler(c.orders),
		CreateBox:            commands.NewCreateBoxCommandHandler(c.boxes, c.orders),
		UpdateBox:            commands.NewUpdateBoxCommandHandler(c.boxes),
		DeleteBox:            commands.NewDeleteBoxCommandHandler(c.boxes),
		GetBoxes:             queries.NewGetBoxesQueryHandler(c.boxes),

		CreateClient:  commands.NewCreateClientCommandHandler(c.clients),
		UpdateClient:  commands.NewUpdateClientCommandHandler(c.clients),
		DeleteClient:  commands.NewDeleteClientCommandHandler(c.clients),
		GetClients:    queries.NewGetClientsQueryHandler(c.clients),
		CreateProduct: commands.NewCreateProductCommandHandler(c.products),
		UpdateProduct: commands.NewUpdateProductCommandHandler(c.products),
		DeleteProduct: commands.NewDeleteProductCommandHandler(c.products),
		GetProducts:   queries.NewGetProductsQueryHandler(c.products),

		ScheduleDelivery: commands.NewScheduleDeliveryCommandHandler(
			c.deliveries, c.orders, c.boxes, c.seaplanes, c.ports, c.planner, c.coordinator,
		),
		UpdateDeliveryStatus: commands.NewUpdateDeliveryStatusCommandHandler(c.deliveries, c.orders, c.coordinator),
		GetDeliveries:        queries.NewGetDeliveriesQueryHandler(c.deliveries),
	}
}
