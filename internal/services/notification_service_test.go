package services

import (
	"errors"
	"little_lemon/internal/models"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	phone   string
	message string
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

func (f *fakeSender) SendTextMessage(phone, message string) error {
	f.sent = append(f.sent, sentMessage{phone: phone, message: message})
	return f.err
}

func TestOrderAssignedMessage(t *testing.T) {
	sender := &fakeSender{}
	order := &models.Order{ID: 5, Total: decimal.RequireFromString("24")}

	NewNotificationService(sender).OrderAssigned(order, &models.User{Username: "carl", PhoneNumber: "15550100"})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "15550100", sender.sent[0].phone)
	assert.Contains(t, sender.sent[0].message, "#5")
	assert.Contains(t, sender.sent[0].message, "24.00")
}

func TestOrderStatusChangedMessages(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   string
	}{
		{models.OrderOutForDelivery, "on its way"},
		{models.OrderDelivered, "has been delivered"},
		{models.OrderPending, "is now pending"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			sender := &fakeSender{}
			order := &models.Order{ID: 9, Status: tt.status}

			NewNotificationService(sender).OrderStatusChanged(order, &models.User{Username: "alice", PhoneNumber: "15550199"})

			require.Len(t, sender.sent, 1)
			assert.Contains(t, sender.sent[0].message, tt.want)
		})
	}
}

func TestNotificationsAreBestEffort(t *testing.T) {
	sender := &fakeSender{err: errors.New("gateway down")}
	svc := NewNotificationService(sender)
	order := &models.Order{ID: 1, Status: models.OrderDelivered}

	svc.OrderStatusChanged(order, &models.User{Username: "nophone"})
	assert.Empty(t, sender.sent)

	svc.OrderStatusChanged(order, nil)
	assert.Empty(t, sender.sent)

	assert.NotPanics(t, func() {
		svc.OrderStatusChanged(order, &models.User{Username: "alice", PhoneNumber: "15550199"})
	})
	assert.Len(t, sender.sent, 1)
}
