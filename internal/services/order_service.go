package services

import (
	"errors"
	"fmt"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderPatch is a field-level order update. Fields lists every field the
// client named, including ones the caller may not write.
type OrderPatch struct {
	Fields       []string
	DeliveryCrew *uint
	Status       models.OrderStatus
}

func (p OrderPatch) has(field string) bool {
	for _, f := range p.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// maxOrderTotal is the largest total the order total column can hold.
var maxOrderTotal = decimal.RequireFromString("9999999999.99")

type OrderService interface {
	CreateOrder(caller *models.User) (*models.Order, error)
	ListOrders(caller *models.User, status models.OrderStatus) ([]models.Order, error)
	GetOrder(caller *models.User, id uint) (*models.Order, error)
	UpdateOrder(caller *models.User, id uint, patch OrderPatch) (*models.Order, error)
	DeleteOrder(caller *models.User, id uint) error
}

type orderService struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

// NewOrderService builds the order service. notifier may be nil.
func NewOrderService(db *gorm.DB, notifier Notifier) OrderService {
	return &orderService{db: db, notifier: notifier, now: time.Now}
}

// CreateOrder turns the caller's cart into an order. Reading the cart,
// writing the order and its items, and emptying the cart happen in one
// transaction that holds the caller's row lock.
func (s *orderService) CreateOrder(caller *models.User) (*models.Order, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).LockByID(caller.ID); err != nil {
			return notFound(err, "user")
		}

		cartRepo := repository.NewCartRepository(tx)
		lines, err := cartRepo.GetByUserID(caller.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(line.Price)
		}
		if total.GreaterThan(maxOrderTotal) {
			return invalid("quantity", "order total is too large; split the cart into several orders")
		}

		order = &models.Order{
			UserID: caller.ID,
			Total:  total,
			Status: models.OrderPending,
			Date:   s.now(),
		}
		if err := repository.NewOrderRepository(tx).Create(order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			})
		}
		if err := repository.NewOrderItemRepository(tx).CreateBatch(items); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		order.Items = items

		return cartRepo.DeleteByUserID(caller.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(caller *models.User, status models.OrderStatus) ([]models.Order, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("%q is not a valid choice", status))
	}

	scope := orderScope(caller)
	scope.Status = status
	return repository.NewOrderRepository(s.db).GetAll(scope)
}

func (s *orderService) GetOrder(caller *models.User, id uint) (*models.Order, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	order, err := repository.NewOrderRepository(s.db).GetByID(id, orderScope(caller))
	if err != nil {
		return nil, notFound(err, "order")
	}
	return order, nil
}

func (s *orderService) UpdateOrder(caller *models.User, id uint, patch OrderPatch) (*models.Order, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	var before, after *models.Order
	var assignee *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := repository.NewOrderRepository(tx)
		order, err := orderRepo.GetByID(id, orderScope(caller))
		if err != nil {
			return notFound(err, "order")
		}
		before = order

		if err := checkOrderFields(models.RoleOf(caller), patch.Fields); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.has(FieldDeliveryCrew) {
			if patch.DeliveryCrew == nil {
				updates["delivery_crew_id"] = nil
			} else {
				crew, err := repository.NewUserRepository(tx).GetByID(*patch.DeliveryCrew)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrInvalidAssignment
					}
					return err
				}
				if !models.IsDeliveryCrew(crew) {
					return ErrInvalidAssignment
				}
				assignee = crew
				updates["delivery_crew_id"] = crew.ID
			}
		}
		if patch.has(FieldStatus) {
			if !patch.Status.Valid() {
				return invalid(FieldStatus, fmt.Sprintf("%q is not a valid choice", patch.Status))
			}
			if !order.Status.CanMoveTo(patch.Status) {
				return invalid(FieldStatus, fmt.Sprintf("cannot move order from %s to %s", order.Status, patch.Status))
			}
			updates["status"] = patch.Status
		}

		if len(updates) > 0 {
			if err := orderRepo.UpdateFields(order.ID, updates); err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
		}

		after, err = orderRepo.GetByID(order.ID, repository.OrderScope{})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(before, after, assignee)
	return after, nil
}

// DeleteOrder hard-deletes an order and its items. Only Managers may delete;
// other callers get ErrMethodNotAllowed for orders they can see.
func (s *orderService) DeleteOrder(caller *models.User, id uint) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := repository.NewOrderRepository(tx)
		if _, err := orderRepo.GetByID(id, orderScope(caller)); err != nil {
			return notFound(err, "order")
		}
		if !models.IsManager(caller) {
			return ErrMethodNotAllowed
		}
		if err := repository.NewOrderItemRepository(tx).DeleteByOrderID(id); err != nil {
			return err
		}
		return orderRepo.Delete(id)
	})
}

func (s *orderService) notify(before, after *models.Order, assignee *models.User) {
	if s.notifier == nil || before == nil || after == nil {
		return
	}

	if assignee != nil && (before.DeliveryCrewID == nil || *before.DeliveryCrewID != assignee.ID) {
		s.notifier.OrderAssigned(after, assignee)
	}

	if before.Status != after.Status {
		customer, err := repository.NewUserRepository(s.db).GetByID(after.UserID)
		if err != nil {
			log.Printf("Warning: failed to load customer for order %d: %v", after.ID, err)
			return
		}
		s.notifier.OrderStatusChanged(after, customer)
	}
}
