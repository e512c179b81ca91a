package http

import (
	"time"

	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/application/usecases/queries"
	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/domain/model/topology"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Island struct {
	ID          int         `json:"id,omitempty"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	AreaKm2     float64     `json:"areaKm2"`
}

type Port struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	IslandName  string      `json:"islandName,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	NbLockers   int64       `json:"nbLockers"`
	Warehouse   bool        `json:"warehouse"`
	Lockers     []Locker    `json:"lockers,omitempty"`
}

type Locker struct {
	ID                 string     `json:"id"`
	PortID             int        `json:"portId"`
	Number             int        `json:"number"`
	Status             string     `json:"status"`
	BoxID              *string    `json:"boxId,omitempty"`
	ReservedForOrderID *string    `json:"reservedForOrderId,omitempty"`
	MaintenanceReason  string     `json:"maintenanceReason,omitempty"`
	LastUsed           *time.Time `json:"lastUsed,omitempty"`
}

type Location struct {
	PortName    string      `json:"portName"`
	IslandName  string      `json:"islandName,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	EnRoute     bool        `json:"enRoute"`
}

type Seaplane struct {
	ID                string    `json:"id"`
	Model             string    `json:"model"`
	BoxCapacity       int       `json:"boxCapacity"`
	FuelConsumptionKm float64   `json:"fuelConsumptionKm"`
	CruiseSpeedKmh    float64   `json:"cruiseSpeedKmh"`
	Status            string    `json:"status"`
	Location          *Location `json:"location"`
}

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID             string      `json:"id"`
	ClientID       string      `json:"clientId"`
	OrderDate      time.Time   `json:"orderDate"`
	Status         string      `json:"status"`
	Priority       string      `json:"priority"`
	DeliveryPort   string      `json:"deliveryPort"`
	Products       []OrderLine `json:"products"`
	BoxCount       int         `json:"boxCount"`
	BoxesDelivered int         `json:"boxesDelivered"`
	TotalWeightKg  float64     `json:"totalWeightKg"`
}

type Box struct {
	ID       string `json:"id"`
	OrderID  string `json:"orderId"`
	ClientID string `json:"clientId"`
	Number   int    `json:"number"`
	Status   string `json:"status"`
	Content  string `json:"content"`
}

type Client struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Specialty    string   `json:"specialty,omitempty"`
	Study        string   `json:"study,omitempty"`
	Email        string   `json:"email"`
	OrderHistory []string `json:"orderHistory"`
}

type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	StockAvailable int     `json:"stockAvailable"`
	WeightKg       float64 `json:"weightKg"`
	UnitPrice      float64 `json:"unitPrice"`
}

type Delivery struct {
	ID                 string     `json:"id"`
	OrderID            string     `json:"orderId"`
	SeaplaneID         string     `json:"seaplaneId"`
	Status             string     `json:"status"`
	PlannedRoute       []string   `json:"plannedRoute"`
	CurrentPort        string     `json:"currentPort"`
	DestinationPort    string     `json:"destinationPort"`
	TransportedBoxes   []string   `json:"transportedBoxes"`
	TotalDistanceKm    float64    `json:"totalDistanceKm"`
	EstimatedFuelL     float64    `json:"estimatedFuelL"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`
	DepartureDate      *time.Time `json:"departureDate,omitempty"`
	ArrivalDate        *time.Time `json:"arrivalDate,omitempty"`
	DelayReason        string     `json:"delayReason,omitempty"`
}

func toCoordinates(c kernel.Coordinates) Coordinates {
	return Coordinates{Lat: c.Lat(), Lon: c.Lon()}
}

func optionalID(id *kernel.ID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []kernel.ID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}

func toIsland(i *topology.Island) Island {
	return Island{ID: i.ID(), Name: i.Name(), Coordinates: toCoordinates(i.Coordinates()), AreaKm2: i.AreaKm2()}
}

func toPort(view queries.PortView) Port {
	p := view.Port
	response := Port{
		ID:          p.ID(),
		Name:        p.Name(),
		Coordinates: toCoordinates(p.Coordinates()),
		NbLockers:   p.LockerCount(),
		Warehouse:   p.IsWarehouse(),
	}
	if p.Island() != nil {
		response.IslandName = p.Island().Name()
	}
	if view.Lockers != nil {
		response.Lockers = mapAll(view.Lockers, toLocker)
	}
	return response
}

func toLocker(l *locker.Locker) Locker {
	return Locker{
		ID:                 l.ID().String(),
		PortID:             l.PortID(),
		Number:             l.Number(),
		Status:             l.Status().String(),
		BoxID:              optionalID(l.BoxID()),
		ReservedForOrderID: optionalID(l.ReservedOrderID()),
		MaintenanceReason:  l.MaintenanceReason(),
		LastUsed:           l.LastUsed(),
	}
}

func toSeaplane(located fleet.LocatedSeaplane) Seaplane {
	s := located.Seaplane
	response := Seaplane{
		ID:                s.ID(),
		Model:             s.Model(),
		BoxCapacity:       s.BoxCapacity(),
		FuelConsumptionKm: s.FuelConsumptionKm(),
		CruiseSpeedKmh:    s.CruiseSpeedKmh(),
		Status:            s.Status().String(),
	}
	if loc := located.Location; loc != nil {
		response.Location = &Location{
			PortName:    loc.PortName,
			Coordinates: toCoordinates(loc.Coordinates),
			EnRoute:     loc.EnRoute,
		}
		if loc.Island != nil {
			response.Location.IslandName = loc.Island.Name()
		}
	}
	return response
}

func toOrder(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLine{ProductID: line.ProductID().String(), Quantity: line.Quantity()})
	}
	return Order{
		ID:             o.ID().String(),
		ClientID:       o.ClientID().String(),
		OrderDate:      o.OrderDate(),
		Status:         o.Status().String(),
		Priority:       o.Priority(),
		DeliveryPort:   o.DeliveryPort(),
		Products:       lines,
		BoxCount:       o.BoxCount(),
		BoxesDelivered: o.BoxesDelivered(),
		TotalWeightKg:  o.TotalWeightKg(),
	}
}

func toBox(b *box.Box) Box {
	return Box{
		ID:       b.ID().String(),
		OrderID:  b.OrderID().String(),
		ClientID: b.ClientID().String(),
		Number:   b.Number(),
		Status:   b.Status().String(),
		Content:  b.Content(),
	}
}

func toClient(c *client.Client) Client {
	return Client{
		ID:           c.ID().String(),
		Name:         c.Name(),
		Type:         c.Type(),
		Specialty:    c.Specialty(),
		Study:        c.Study(),
		Email:        c.Email(),
		OrderHistory: idStrings(c.OrderHistory()),
	}
}

func toProduct(p *product.Product) Product {
	return Product{
		ID:             p.ID().String(),
		Name:           p.Name(),
		Description:    p.Description(),
		StockAvailable: p.StockAvailable(),
		WeightKg:       p.WeightKg(),
		UnitPrice:      p.UnitPrice(),
	}
}

func toDelivery(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:                 d.ID().String(),
		OrderID:            d.OrderID().String(),
		SeaplaneID:         d.SeaplaneID(),
		Status:             d.Status().String(),
		PlannedRoute:       d.PlannedRoute(),
		CurrentPort:        d.CurrentPort(),
		DestinationPort:    d.DestinationPort(),
		TransportedBoxes:   idStrings(d.TransportedBoxes()),
		TotalDistanceKm:    d.TotalDistanceKm(),
		EstimatedFuelL:     d.EstimatedFuelL(),
		ScheduledDeparture: d.ScheduledDeparture(),
		DepartureDate:      d.DepartureDate(),
		ArrivalDate:        d.ArrivalDate(),
		DelayReason:        d.DelayReason(),
	}
}

func mapAll[T, R any](items []T, convert func(T) R) []R {
	result := make([]R, len(items))
	for i, item := range items {
		result[i] = convert(item)
	}
	return result
}
