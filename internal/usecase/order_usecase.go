package usecase

import (
	"context"
	"fmt"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
)

type CreateOrderInput struct {
	Items             []entity.OrderLine `json:"items"`
	TotalPrice        float64            `json:"totalPrice"`
	ShippingAddressID string             `json:"shippingAddress"`
	PaymentStatus     string             `json:"paymentStatus"`
	RazorpayOrderID   string             `json:"razorpayOrderId"`
	RazorpayPaymentID string             `json:"razorpayPaymentId"`
	RazorpaySignature string             `json:"razorpaySignature"`
	ShippingStatus    string             `json:"shippingStatus"`
	SKUID             string             `json:"skuId"`
}

type UpdateOrderInput struct {
	ShippingStatus    *string          `json:"shippingStatus"`
	PaymentStatus     *string          `json:"paymentStatus"`
	ShippingAddressID *string          `json:"shippingAddress"`
	Refund            *entity.Refund   `json:"refund"`
	Exchange          *entity.Exchange `json:"exchange"`
}

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	itemDetailRepo repository.ItemDetailRepository
	now            func() time.Time
}

func NewOrderUseCase(orderRepo repository.OrderRepository, itemDetailRepo repository.ItemDetailRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		itemDetailRepo: itemDetailRepo,
		now:            time.Now,
	}
}

func checkStatus(field, value string, allowed []string) error {
	if !entity.OneOf(value, allowed) {
		return errors.BadRequest(fmt.Sprintf("Invalid %s %q", field, value), nil)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// checkLine verifies the line's color and size exist on its item detail.
func (uc *OrderUseCase) checkLine(ctx context.Context, i int, line entity.OrderLine) error {
	if line.ItemDetailID == "" {
		return errors.BadRequest(fmt.Sprintf("Missing itemDetailId in item at index %d", i), nil)
	}
	detail, err := uc.itemDetailRepo.GetByID(ctx, line.ItemDetailID)
	if err != nil {
		return notFoundAs(err, errors.NotFoundMessage(fmt.Sprintf("ItemDetail not found for item at index %d", i)), "Failed to load item detail")
	}
	if line.Color == "" {
		return nil
	}
	variant, ok := detail.FindColor(line.Color, true)
	if !ok {
		return errors.BadRequest(fmt.Sprintf("Color %q not available for item at index %d", line.Color, i), nil)
	}
	if line.Size == "" {
		return nil
	}
	for _, s := range variant.Sizes {
		if s.Size == line.Size {
			return nil
		}
	}
	return errors.BadRequest(fmt.Sprintf("Size %q not available for item at index %d", line.Size, i), nil)
}

func (uc *OrderUseCase) Create(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Customer and order items are required", nil)
	}
	if input.TotalPrice <= 0 || input.RazorpayOrderID == "" || input.RazorpayPaymentID == "" || input.RazorpaySignature == "" {
		return nil, errors.BadRequest("Payment details are required", nil)
	}
	for i, line := range input.Items {
		if err := uc.checkLine(ctx, i, line); err != nil {
			return nil, err
		}
	}

	order := &entity.Order{
		ID:                generateUUID(),
		UserID:            userID,
		Items:             input.Items,
		TotalPrice:        input.TotalPrice,
		ShippingAddressID: input.ShippingAddressID,
		PaymentStatus:     orDefault(input.PaymentStatus, "Pending"),
		RazorpayOrderID:   input.RazorpayOrderID,
		RazorpayPaymentID: input.RazorpayPaymentID,
		RazorpaySignature: input.RazorpaySignature,
		ShippingStatus:    orDefault(input.ShippingStatus, "Pending"),
		SKUID:             input.SKUID,
	}
	if err := checkStatus("paymentStatus", order.PaymentStatus, entity.PaymentStatuses); err != nil {
		return nil, err
	}
	if err := checkStatus("shippingStatus", order.ShippingStatus, entity.ShippingStatuses); err != nil {
		return nil, err
	}

	now := uc.now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, wrap(err, "Failed to create order")
	}
	return order, nil
}

func (uc *OrderUseCase) List(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrap(err, "Failed to load orders")
	}
	return orders, nil
}

// Get hides orders of other users behind NOT_FOUND.
func (uc *OrderUseCase) Get(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Order not found"), "Failed to load order")
	}
	if order.UserID != userID {
		return nil, errors.NotFoundMessage("Order not found")
	}
	return order, nil
}

func (uc *OrderUseCase) Update(ctx context.Context, userID, orderID string, input UpdateOrderInput) (*entity.Order, error) {
	order, err := uc.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if input.ShippingStatus != nil {
		if err := checkStatus("shippingStatus", *input.ShippingStatus, entity.ShippingStatuses); err != nil {
			return nil, err
		}
		order.ShippingStatus = *input.ShippingStatus
	}
	if input.PaymentStatus != nil {
		if err := checkStatus("paymentStatus", *input.PaymentStatus, entity.PaymentStatuses); err != nil {
			return nil, err
		}
		order.PaymentStatus = *input.PaymentStatus
	}
	setString(&order.ShippingAddressID, input.ShippingAddressID)

	now := uc.now()
	if input.Refund != nil {
		refund := *input.Refund
		refund.Status = orDefault(refund.Status, "Pending")
		if err := checkStatus("refund status", refund.Status, entity.RefundStatuses); err != nil {
			return nil, err
		}
		if refund.RequestDate == nil {
			refund.RequestDate = &now
		}
		order.Refund = &refund
	}
	if input.Exchange != nil {
		exchange := *input.Exchange
		exchange.Status = orDefault(exchange.Status, "Pending")
		if err := checkStatus("exchange status", exchange.Status, entity.ExchangeStatuses); err != nil {
			return nil, err
		}
		if exchange.RequestDate == nil {
			exchange.RequestDate = &now
		}
		order.Exchange = &exchange
	}
	order.UpdatedAt = now

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, wrap(err, "Failed to update order")
	}
	return order, nil
}

func (uc *OrderUseCase) Delete(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return nil, wrap(err, "Failed to delete order")
	}
	return order, nil
}
