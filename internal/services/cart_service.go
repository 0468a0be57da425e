package services

import (
	"errors"
	"fmt"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"

	"gorm.io/gorm"
)

// MaxLineQuantity caps a single cart line, merged or not, so that its price
// always fits the line price column.
const MaxLineQuantity = 1000

type AddToCartInput struct {
	MenuItemID uint `json:"menuitem" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type CartService interface {
	ListCart(caller *models.User) ([]models.CartLine, error)
	AddToCart(caller *models.User, in AddToCartInput) (*models.CartLine, error)
	ClearCart(caller *models.User) error
}

type cartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) ListCart(caller *models.User) ([]models.CartLine, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	return repository.NewCartRepository(s.db).GetByUserID(caller.ID)
}

// AddToCart snapshots the item's current price into the caller's cart. A
// second add of the same item merges into the existing line: quantities are
// summed and the whole line is repriced at the current price.
func (s *cartService) AddToCart(caller *models.User, in AddToCartInput) (*models.CartLine, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, invalid("quantity", "ensure this value is greater than or equal to 1")
	}
	if in.Quantity > MaxLineQuantity {
		return nil, invalid("quantity", fmt.Sprintf("ensure this value is less than or equal to %d", MaxLineQuantity))
	}

	var line *models.CartLine
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).LockByID(caller.ID); err != nil {
			return notFound(err, "user")
		}

		item, err := repository.NewMenuItemRepository(tx).GetByID(in.MenuItemID)
		if err != nil {
			return notFound(err, "menu item")
		}
		if !item.Featured {
			return ErrUnavailable
		}

		cartRepo := repository.NewCartRepository(tx)
		existing, err := cartRepo.GetLine(caller.ID, item.ID)
		switch {
		case err == nil:
			if existing.Quantity+in.Quantity > MaxLineQuantity {
				return invalid("quantity", fmt.Sprintf("cart already holds %d of this item; a line may hold at most %d", existing.Quantity, MaxLineQuantity))
			}
			existing.Quantity += in.Quantity
			existing.UnitPrice = item.Price
			existing.Price = models.LinePrice(existing.Quantity, item.Price)
			line = existing
			return cartRepo.Update(line)
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &models.CartLine{
				UserID:     caller.ID,
				MenuItemID: item.ID,
				Quantity:   in.Quantity,
				UnitPrice:  item.Price,
				Price:      models.LinePrice(in.Quantity, item.Price),
			}
			return cartRepo.Create(line)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// ClearCart empties the caller's cart. Clearing an empty cart succeeds.
func (s *cartService) ClearCart(caller *models.User) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).LockByID(caller.ID); err != nil {
			return notFound(err, "user")
		}
		return repository.NewCartRepository(tx).DeleteByUserID(caller.ID)
	})
}
