package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/report"
)

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	CustomerName    string    `json:"customerName"`
	CustomerCityID  string    `json:"customerCityId"`
	CustomerAddress string    `json:"customerAddress"`
	RestaurantID    string    `json:"restaurantId"`
	DeliveryTime    time.Time `json:"deliveryTime"`
}

type NewCity struct {
	Name string `json:"name"`
}

type NewDriver struct {
	Name   string `json:"name"`
	CityID string `json:"cityId"`
}

type NewRestaurant struct {
	Name        string `json:"name"`
	CityID      string `json:"cityId"`
	Description string `json:"description"`
}

// Created is returned for every provisioned entity.
type Created struct {
	ID string `json:"id"`
}

type Delivery struct {
	ID           string    `json:"id"`
	DriverID     string    `json:"driverId"`
	RestaurantID string    `json:"restaurantId"`
	CustomerID   string    `json:"customerId"`
	DeliveryTime time.Time `json:"deliveryTime"`
	Distance     float64   `json:"distance"`
}

type Driver struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"cityId"`
}

type DriverRank struct {
	Rank          int     `json:"rank"`
	DriverID      string  `json:"driverId"`
	DriverName    string  `json:"driverName"`
	CityID        string  `json:"cityId"`
	TotalDistance float64 `json:"totalDistance"`
}

func toDelivery(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:           d.ID().String(),
		DriverID:     d.DriverID().String(),
		RestaurantID: d.RestaurantID().String(),
		CustomerID:   d.CustomerID().String(),
		DeliveryTime: d.DeliveryTime().UTC(),
		Distance:     d.Distance().Kilometers(),
	}
}

func toScheduledDelivery(driverID string, d queries.GetDriverDeliveriesQueryResponse) Delivery {
	return Delivery{
		ID:           d.ID.String(),
		DriverID:     driverID,
		RestaurantID: d.RestaurantID.String(),
		CustomerID:   d.CustomerID.String(),
		DeliveryTime: d.DeliveryTime.UTC(),
		Distance:     d.Distance,
	}
}

func toDriverRanks(rows []report.DriverDistance) []DriverRank {
	response := make([]DriverRank, len(rows))
	for i, row := range rows {
		response[i] = DriverRank{
			Rank:          i + 1,
			DriverID:      row.Driver.ID().String(),
			DriverName:    row.Driver.Name(),
			CityID:        row.Driver.CityID().String(),
			TotalDistance: row.TotalDistance,
		}
	}
	return response
}
