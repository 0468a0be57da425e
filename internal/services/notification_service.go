package services

import (
	"fmt"
	"little_lemon/internal/models"
	"log"
)

// Notifier tells people about order changes. Delivery is best-effort: it
// never fails the request that triggered it.
type Notifier interface {
	OrderAssigned(order *models.Order, crew *models.User)
	OrderStatusChanged(order *models.Order, customer *models.User)
}

// MessageSender delivers a text message to a phone number.
type MessageSender interface {
	SendTextMessage(phone, message string) error
}

type notificationService struct {
	sender MessageSender
}

func NewNotificationService(sender MessageSender) Notifier {
	return &notificationService{sender: sender}
}

func (s *notificationService) OrderAssigned(order *models.Order, crew *models.User) {
	msg := fmt.Sprintf("🛵 Order #%d (total %s) has been assigned to you.", order.ID, order.Total.StringFixed(2))
	s.send(crew, msg)
}

func (s *notificationService) OrderStatusChanged(order *models.Order, customer *models.User) {
	var msg string
	switch order.Status {
	case models.OrderOutForDelivery:
		msg = fmt.Sprintf("🛵 Your order #%d is on its way.", order.ID)
	case models.OrderDelivered:
		msg = fmt.Sprintf("✅ Your order #%d has been delivered. Enjoy your meal!", order.ID)
	default:
		msg = fmt.Sprintf("Your order #%d is now %s.", order.ID, order.Status)
	}
	s.send(customer, msg)
}

func (s *notificationService) send(to *models.User, message string) {
	if to == nil || to.PhoneNumber == "" {
		return
	}
	if err := s.sender.SendTextMessage(to.PhoneNumber, message); err != nil {
		log.Printf("Warning: failed to notify %s: %v", to.Username, err)
	}
}
