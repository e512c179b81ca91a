package deliveryrepo

import (
	"time"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryDTO is a document of the deliveries collection.
type DeliveryDTO struct {
	ID                 primitive.ObjectID   `bson:"_id"`
	OrderID            primitive.ObjectID   `bson:"order_id"`
	SeaplaneID         string               `bson:"seaplane_id"`
	Status             string               `bson:"status"`
	PlannedRoute       []string             `bson:"planned_route"`
	CurrentPort        string               `bson:"current_port"`
	DestinationPort    string               `bson:"destination_port"`
	TransportedBoxes   []primitive.ObjectID `bson:"transported_boxes"`
	TotalDistanceKm    float64              `bson:"total_distance_km"`
	EstimatedFuelL     float64              `bson:"estimated_fuel_l"`
	ScheduledDeparture *time.Time           `bson:"scheduled_departure,omitempty"`
	DepartureDate      *time.Time           `bson:"departure_date,omitempty"`
	ArrivalDate        *time.Time           `bson:"arrival_date,omitempty"`
	DelayReason        string               `bson:"delay_reason,omitempty"`
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                 d.ID().ObjectID(),
		OrderID:            d.OrderID().ObjectID(),
		SeaplaneID:         d.SeaplaneID(),
		Status:             mongostore.StatusValue(d.Status()),
		PlannedRoute:       d.PlannedRoute(),
		CurrentPort:        d.CurrentPort(),
		DestinationPort:    d.DestinationPort(),
		TransportedBoxes:   mongostore.ObjectIDs(d.TransportedBoxes()),
		TotalDistanceKm:    d.TotalDistanceKm(),
		EstimatedFuelL:     d.EstimatedFuelL(),
		ScheduledDeparture: d.ScheduledDeparture(),
		DepartureDate:      d.DepartureDate(),
		ArrivalDate:        d.ArrivalDate(),
		DelayReason:        d.DelayReason(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.IDFromObjectID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.IDFromObjectID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	boxes, err := mongostore.IDs(dto.TransportedBoxes)
	if err != nil {
		return nil, err
	}

	plan := delivery.Plan{
		Route:          dto.PlannedRoute,
		DistanceKm:     dto.TotalDistanceKm,
		EstimatedFuelL: dto.EstimatedFuelL,
		Boxes:          boxes,
		ScheduledFor:   mongostore.UTC(dto.ScheduledDeparture),
	}

	return delivery.RestoreDelivery(
		id, orderID, dto.SeaplaneID, status, plan, dto.CurrentPort,
		mongostore.UTC(dto.DepartureDate), mongostore.UTC(dto.ArrivalDate), dto.DelayReason,
	)
}
