package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderRequest is the request body for placing a new order.
type CreateOrderRequest struct {
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	MobileNumber     string  `json:"mobileNumber"`
	TotalAmount      float64 `json:"totalAmount"`
	NotificationType string  `json:"notificationType"`
}

// UpdateOrderStatusRequest is the request body for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	MobileNumber     string    `json:"mobileNumber"`
	TotalAmount      float64   `json:"totalAmount"`
	Status           string    `json:"status"`
	NotificationType string    `json:"notificationType"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ErrorResponse is the API representation of a failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:               aggregate.ID().String(),
		CustomerName:     aggregate.CustomerName(),
		CustomerEmail:    aggregate.CustomerEmail(),
		MobileNumber:     aggregate.MobileNumber(),
		TotalAmount:      aggregate.TotalAmount(),
		Status:           aggregate.Status().String(),
		NotificationType: aggregate.NotificationType().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func orderResponseFromQuery(row queries.OrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:               row.ID,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		MobileNumber:     row.MobileNumber,
		TotalAmount:      row.TotalAmount,
		Status:           row.Status,
		NotificationType: row.NotificationType,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
