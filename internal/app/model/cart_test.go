package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price float64) Product {
	return Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: CategoryBudget,
	}
}

func TestCart_Add_MergesByIdentifier(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", 450)

	cart.Add(p)
	cart.Add(p)
	cart.Add(p)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("4", 900))
	cart.Add(testProduct("7", 480))
	cart.Add(testProduct("4", 900))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "4", items[0].ProductID)
	assert.Equal(t, "7", items[1].ProductID)
}

func TestCart_Add_OpensCartAndPulses(t *testing.T) {
	cart := NewCart()
	assert.False(t, cart.IsOpen())
	assert.False(t, cart.JustAdded())

	cart.Add(testProduct("1", 450))

	assert.True(t, cart.IsOpen())
	assert.True(t, cart.JustAdded())

	cart.Close()
	assert.False(t, cart.IsOpen())
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 450))
	cart.Add(testProduct("2", 2500))

	cart.Remove("1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "2", cart.Items()[0].ProductID)

	// Removing an absent identifier is a no-op
	cart.Remove("missing")
	assert.Len(t, cart.Items(), 1)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 450))

	cart.SetQuantity("1", 5)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCart_SetQuantity_ZeroBehavesAsRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 450))
	cart.Add(testProduct("1", 450))

	cart.SetQuantity("1", 0)
	assert.True(t, cart.IsEmpty())

	cart.Add(testProduct("1", 450))
	cart.SetQuantity("1", -3)
	assert.True(t, cart.IsEmpty())
}

func TestCart_DerivedTotals(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("4", 900))
	cart.Add(testProduct("4", 900))
	cart.Add(testProduct("7", 480))

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 2280.0, cart.TotalPrice())
}

func TestCart_Clear_Idempotent(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 450))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCart_SnapshotRoundTrip(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("4", 900))
	cart.Add(testProduct("4", 900))
	cart.Add(testProduct("7", 480))

	snapshot, err := cart.Snapshot()
	require.NoError(t, err)

	restored, err := RestoreCart(snapshot)
	require.NoError(t, err)

	require.Len(t, restored.Items(), 2)
	assert.Equal(t, "4", restored.Items()[0].ProductID)
	assert.Equal(t, 2, restored.Items()[0].Quantity)
	assert.Equal(t, "7", restored.Items()[1].ProductID)
	assert.Equal(t, 1, restored.Items()[1].Quantity)
	assert.Equal(t, cart.TotalItems(), restored.TotalItems())
	assert.Equal(t, cart.TotalPrice(), restored.TotalPrice())
}

func TestRestoreCart_CorruptSnapshot(t *testing.T) {
	cart, err := RestoreCart([]byte("{not json"))
	assert.Error(t, err)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestCart_Add_SyntheticProduct(t *testing.T) {
	cart := NewCart()
	bundle := SyntheticProduct{
		ID:          "custom-abc123",
		Name:        "Custom Valentine's Package",
		Price:       1850,
		Category:    CategoryHampers,
		Description: "A personalized selection containing: Love Letter Box, Chocolate Heart Box",
		Note:        "Love Letter Box, Chocolate Heart Box",
	}

	cart.Add(bundle)

	require.Len(t, cart.Items(), 1)
	item := cart.Items()[0]
	assert.Equal(t, "custom-abc123", item.ProductID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 1850.0, item.Price)
	assert.Equal(t, CategoryHampers, item.Category)
	assert.Equal(t, "Love Letter Box, Chocolate Heart Box", item.CustomText)
}
