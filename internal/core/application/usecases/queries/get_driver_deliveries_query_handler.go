package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverDeliveriesQueryHandler retrieves the delivery schedule of a driver.
//
// Example:
//
//	query, _ := NewGetDriverDeliveriesQuery(maryID)
//	deliveries, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such driver
//	}
type GetDriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver schedule queries.
func NewGetDriverDeliveriesQueryHandler(db *gorm.DB) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db}
}

// Handle returns the deliveries ordered by delivery time.
// Returns errs.ErrObjectNotFound when the driver does not exist.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
) ([]GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	driverID := query.DriverID()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM drivers WHERE id = ?)`, driverID.Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("driver", driverID.String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			restaurant_id,
			customer_id,
			delivery_time,
			distance
		FROM deliveries
		WHERE driver_id = ?
		ORDER BY delivery_time, id
	`, driverID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetDriverDeliveriesQueryResponse, 0)
	for rows.Next() {
		var (
			item                         GetDriverDeliveriesQueryResponse
			id, restaurantID, customerID uuid.UUID
		)
		if err = rows.Scan(&id, &restaurantID, &customerID, &item.DeliveryTime, &item.Distance); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if item.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
