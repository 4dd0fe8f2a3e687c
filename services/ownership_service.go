package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

// ResourceKind tags the entity a request targets. The route table decides
// the kind; it is never inferred from the payload.
type ResourceKind string

const (
	KindTruck ResourceKind = "truck"
	KindItem  ResourceKind = "item"
	KindPhoto ResourceKind = "photo"
)

// ErrNotFound is returned when any hop of an ownership chain is missing.
var ErrNotFound = errors.New("resource not found")

// OwnershipService walks ownership chains: a truck is owned by its user, an
// item by its truck's user, a photo by its item's truck's user.
type OwnershipService struct {
	db *gorm.DB
}

func NewOwnershipService(db *gorm.DB) *OwnershipService {
	return &OwnershipService{db: db}
}

// ResolveOwner returns the id of the user that controls the resource. A
// missing row or missing parent anywhere along the chain yields ErrNotFound;
// the resolver never assumes an earlier gate verified existence.
func (s *OwnershipService) ResolveOwner(ctx context.Context, kind ResourceKind, id uint) (uint, error) {
	var ownerID uint
	q := s.db.WithContext(ctx)

	var err error
	switch kind {
	case KindTruck:
		err = q.Model(&entity.Truck{}).
			Select("trucks.user_id").
			Where("trucks.truck_id = ?", id).
			Take(&ownerID).Error
	case KindItem:
		err = q.Model(&entity.Item{}).
			Select("trucks.user_id").
			Joins("JOIN trucks ON trucks.truck_id = items.truck_id").
			Where("items.item_id = ?", id).
			Take(&ownerID).Error
	case KindPhoto:
		err = q.Model(&entity.ItemPhoto{}).
			Select("trucks.user_id").
			Joins("JOIN items ON items.item_id = item_photos.item_id").
			Joins("JOIN trucks ON trucks.truck_id = items.truck_id").
			Where("item_photos.photo_id = ?", id).
			Take(&ownerID).Error
	default:
		return 0, fmt.Errorf("unknown resource kind %q", kind)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}
