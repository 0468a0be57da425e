package services

import (
	"errors"
	"fmt"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxMenuPageSize caps a single menu listing.
const MaxMenuPageSize = 50

var maxMenuPrice = decimal.NewFromInt(10000)

// MenuCache is a read-through cache for single menu items.
type MenuCache interface {
	GetMenuItem(id uint) (*models.MenuItem, error)
	SetMenuItem(item *models.MenuItem, ttl time.Duration) error
	DeleteMenuItem(id uint) error
}

type CategoryInput struct {
	Title string `json:"title" binding:"required,max=255"`
	Slug  string `json:"slug" binding:"required,max=255"`
}

type MenuItemInput struct {
	Title      string          `json:"title" binding:"required,max=255"`
	Price      decimal.Decimal `json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"category_id" binding:"required"`
}

type CatalogService interface {
	ListCategories(caller *models.User) ([]models.Category, error)
	GetCategory(caller *models.User, id uint) (*models.Category, error)
	CreateCategory(caller *models.User, in CategoryInput) (*models.Category, error)
	UpdateCategory(caller *models.User, id uint, in CategoryInput) (*models.Category, error)
	DeleteCategory(caller *models.User, id uint) error

	ListMenuItems(caller *models.User, filter repository.MenuItemFilter) ([]models.MenuItem, error)
	GetMenuItem(caller *models.User, id uint) (*models.MenuItem, error)
	CreateMenuItem(caller *models.User, in MenuItemInput) (*models.MenuItem, error)
	UpdateMenuItem(caller *models.User, id uint, in MenuItemInput) (*models.MenuItem, error)
	DeleteMenuItem(caller *models.User, id uint) error
}

type catalogService struct {
	db       *gorm.DB
	cache    MenuCache
	cacheTTL time.Duration
}

// NewCatalogService builds the catalog service. cache may be nil.
func NewCatalogService(db *gorm.DB, cache MenuCache, cacheTTL time.Duration) CatalogService {
	return &catalogService{db: db, cache: cache, cacheTTL: cacheTTL}
}

func (s *catalogService) ListCategories(caller *models.User) ([]models.Category, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	return repository.NewCategoryRepository(s.db).GetAll()
}

func (s *catalogService) GetCategory(caller *models.User, id uint) (*models.Category, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	category, err := repository.NewCategoryRepository(s.db).GetByID(id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return category, nil
}

func validateCategory(in CategoryInput) (CategoryInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Title == "" {
		return in, invalid("title", "this field may not be blank")
	}
	if in.Slug == "" {
		return in, invalid("slug", "this field may not be blank")
	}
	return in, nil
}

func checkSlug(repo repository.CategoryRepository, slug string, exceptID uint) error {
	taken, err := repo.SlugTaken(slug, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return invalid("slug", "category with this slug already exists")
	}
	return nil
}

func (s *catalogService) CreateCategory(caller *models.User, in CategoryInput) (*models.Category, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}
	in, err := validateCategory(in)
	if err != nil {
		return nil, err
	}

	repo := repository.NewCategoryRepository(s.db)
	if err := checkSlug(repo, in.Slug, 0); err != nil {
		return nil, err
	}
	category := &models.Category{Title: in.Title, Slug: in.Slug}
	if err := repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", duplicate(err, "slug"))
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(caller *models.User, id uint, in CategoryInput) (*models.Category, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}
	in, err := validateCategory(in)
	if err != nil {
		return nil, err
	}

	repo := repository.NewCategoryRepository(s.db)
	category, err := repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	if err := checkSlug(repo, in.Slug, id); err != nil {
		return nil, err
	}
	category.Title = in.Title
	category.Slug = in.Slug
	if err := repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", duplicate(err, "slug"))
	}

	// Cached items carry their category, so they go stale on rename.
	items, err := repository.NewMenuItemRepository(s.db).List(repository.MenuItemFilter{CategoryID: id})
	if err != nil {
		log.Printf("Warning: failed to list menu items of category %d for eviction: %v", id, err)
	}
	for _, item := range items {
		s.evict(item.ID)
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(caller *models.User, id uint) error {
	if err := requireManager(caller); err != nil {
		return err
	}

	repo := repository.NewCategoryRepository(s.db)
	if _, err := repo.GetByID(id); err != nil {
		return notFound(err, "category")
	}
	count, err := repo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return invalid("category", "category still has menu items")
	}
	return repo.Delete(id)
}

func (s *catalogService) ListMenuItems(caller *models.User, filter repository.MenuItemFilter) ([]models.MenuItem, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if !repository.ValidOrdering(filter.Ordering) {
		return nil, invalid("ordering", "unsupported ordering")
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, invalid("limit", "limit and offset must not be negative")
	}
	if filter.Limit > MaxMenuPageSize || (filter.Offset > 0 && filter.Limit == 0) {
		filter.Limit = MaxMenuPageSize
	}
	return repository.NewMenuItemRepository(s.db).List(filter)
}

func (s *catalogService) GetMenuItem(caller *models.User, id uint) (*models.MenuItem, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if item, err := s.cache.GetMenuItem(id); err == nil {
			return item, nil
		}
	}

	item, err := repository.NewMenuItemRepository(s.db).GetByID(id)
	if err != nil {
		return nil, notFound(err, "menu item")
	}

	if s.cache != nil {
		if err := s.cache.SetMenuItem(item, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache menu item %d: %v", id, err)
		}
	}
	return item, nil
}

func (s *catalogService) validateMenuItem(in MenuItemInput) (MenuItemInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, invalid("title", "this field may not be blank")
	}
	if !in.Price.IsPositive() {
		return in, invalid("price", "must be greater than zero")
	}
	if in.Price.Exponent() < -2 {
		return in, invalid("price", "ensure that there are no more than 2 decimal places")
	}
	if in.Price.GreaterThanOrEqual(maxMenuPrice) {
		return in, invalid("price", "ensure that there are no more than 4 digits before the decimal point")
	}
	if _, err := repository.NewCategoryRepository(s.db).GetByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return in, invalid("category_id", "invalid pk - object does not exist")
		}
		return in, err
	}
	return in, nil
}

func (s *catalogService) CreateMenuItem(caller *models.User, in MenuItemInput) (*models.MenuItem, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}
	in, err := s.validateMenuItem(in)
	if err != nil {
		return nil, err
	}

	repo := repository.NewMenuItemRepository(s.db)
	item := &models.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return repo.GetByID(item.ID)
}

func (s *catalogService) UpdateMenuItem(caller *models.User, id uint, in MenuItemInput) (*models.MenuItem, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}

	repo := repository.NewMenuItemRepository(s.db)
	item, err := repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "menu item")
	}
	in, err = s.validateMenuItem(in)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	item.CategoryID = in.CategoryID
	item.Category = nil
	if err := repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	s.evict(id)
	return repo.GetByID(id)
}

// DeleteMenuItem removes the item and any cart lines holding it. Items that
// appear on an order are kept so order history stays intact.
func (s *catalogService) DeleteMenuItem(caller *models.User, id uint) error {
	if err := requireManager(caller); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewMenuItemRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(err, "menu item")
		}
		count, err := repo.CountOrderItems(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return invalid("menuitem", "menu item is referenced by existing orders")
		}
		if err := repo.DeleteCartLines(id); err != nil {
			return err
		}
		return repo.Delete(id)
	})
	if err != nil {
		return err
	}
	s.evict(id)
	return nil
}

func (s *catalogService) evict(id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteMenuItem(id); err != nil {
		log.Printf("Warning: failed to evict menu item %d from cache: %v", id, err)
	}
}
