package lockerrepo

import (
	"time"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LockerDTO is a document of the lockers collection.
type LockerDTO struct {
	ID                 primitive.ObjectID  `bson:"_id"`
	PortID             int                 `bson:"port_id"`
	Number             int                 `bson:"number"`
	Status             string              `bson:"status"`
	BoxID              *primitive.ObjectID `bson:"box_id,omitempty"`
	ReservedForOrderID *primitive.ObjectID `bson:"reserved_for_order_id,omitempty"`
	MaintenanceReason  string              `bson:"maintenance_reason,omitempty"`
	LastUsed           *time.Time          `bson:"last_used,omitempty"`
}

func fromDomain(l *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:                 l.ID().ObjectID(),
		PortID:             l.PortID(),
		Number:             l.Number(),
		Status:             mongostore.StatusValue(l.Status()),
		BoxID:              mongostore.OptionalObjectID(l.BoxID()),
		ReservedForOrderID: mongostore.OptionalObjectID(l.ReservedOrderID()),
		MaintenanceReason:  l.MaintenanceReason(),
		LastUsed:           l.LastUsed(),
	}
}

func toDomain(dto LockerDTO) (*locker.Locker, error) {
	id, err := kernel.IDFromObjectID(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := locker.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	boxID, err := mongostore.OptionalID(dto.BoxID)
	if err != nil {
		return nil, err
	}
	reservedOrderID, err := mongostore.OptionalID(dto.ReservedForOrderID)
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(
		id, dto.PortID, dto.Number, status,
		boxID, reservedOrderID, dto.MaintenanceReason, mongostore.UTC(dto.LastUsed),
	)
}
