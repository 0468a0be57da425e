package services

import (
	"little_lemon/internal/models"
	"little_lemon/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartSnapshotsPrice(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	fish := testutil.CreateMenuItem(t, db, mains, "Grilled Fish", "12.00", true)

	line, err := NewCartService(db).AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, alice.ID, line.UserID)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(testutil.Price("12.00")), line.UnitPrice.String())
	assert.True(t, line.Price.Equal(testutil.Price("24.00")), line.Price.String())
}

func TestAddToCartRejectsUnfeaturedItem(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	hidden := testutil.CreateMenuItem(t, db, mains, "Lemon Chicken", "18.50", false)
	svc := NewCartService(db)

	for _, qty := range []int{1, 5} {
		_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: hidden.ID, Quantity: qty})
		assert.ErrorIs(t, err, ErrUnavailable)
	}

	lines, err := svc.ListCart(alice)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	fish := testutil.CreateMenuItem(t, db, mains, "Grilled Fish", "12.00", true)
	svc := NewCartService(db)

	_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", fish.ID).Update("price", testutil.Price("15.00")).Error)

	line, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(testutil.Price("15.00")), line.UnitPrice.String())
	assert.True(t, line.Price.Equal(testutil.Price("45.00")), line.Price.String())

	lines, err := svc.ListCart(alice)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestAddToCartValidation(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	fish := testutil.CreateMenuItem(t, db, mains, "Grilled Fish", "12.00", true)
	svc := NewCartService(db)

	var validation *ValidationError
	_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 0})
	assert.ErrorAs(t, err, &validation)

	_, err = svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: -3})
	assert.ErrorAs(t, err, &validation)

	_, err = svc.AddToCart(alice, AddToCartInput{MenuItemID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddToCart(nil, AddToCartInput{MenuItemID: fish.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCartIsPerUser(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	fish := testutil.CreateMenuItem(t, db, mains, "Grilled Fish", "12.00", true)
	svc := NewCartService(db)

	_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 1})
	require.NoError(t, err)

	lines, err := svc.ListCart(bob)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, svc.ClearCart(bob))
	lines, err = svc.ListCart(alice)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestClearCartIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	fish := testutil.CreateMenuItem(t, db, mains, "Grilled Fish", "12.00", true)
	svc := NewCartService(db)

	_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: fish.ID, Quantity: 1})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.ClearCart(alice))
		lines, err := svc.ListCart(alice)
		require.NoError(t, err)
		assert.Empty(t, lines)
	}
}

func TestAddToCartCapsLineQuantity(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	mains := testutil.CreateCategory(t, db, "Mains", "mains")
	platter := testutil.CreateMenuItem(t, db, mains, "Party Platter", "50.00", true)
	svc := NewCartService(db)

	var validation *ValidationError
	_, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: platter.ID, Quantity: MaxLineQuantity + 1})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "quantity", validation.Field)

	line, err := svc.AddToCart(alice, AddToCartInput{MenuItemID: platter.ID, Quantity: 200})
	require.NoError(t, err)
	assert.True(t, line.Price.Equal(testutil.Price("10000.00")), line.Price.String())

	_, err = svc.AddToCart(alice, AddToCartInput{MenuItemID: platter.ID, Quantity: MaxLineQuantity - 199})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "quantity", validation.Field)

	lines, err := svc.ListCart(alice)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 200, lines[0].Quantity)

	line, err = svc.AddToCart(alice, AddToCartInput{MenuItemID: platter.ID, Quantity: MaxLineQuantity - 200})
	require.NoError(t, err)
	assert.Equal(t, MaxLineQuantity, line.Quantity)
}
