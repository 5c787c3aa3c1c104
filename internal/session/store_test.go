package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	sess := store.Create(7, "alice", "sales")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Empty(t, sess.Cart)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "sales", got.Role)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStore_SessionIDsAreUnique(t *testing.T) {
	store := NewStore()
	a := store.Create(1, "a", "sales")
	b := store.Create(1, "a", "sales")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddToCart_AppendsAndIncrements(t *testing.T) {
	store := NewStore()
	sess := store.Create(1, "alice", "sales")

	store.AddToCart(sess.ID, CartItem{ProductID: 10, Name: "Apple", Price: 1.50, Quantity: 3})
	store.AddToCart(sess.ID, CartItem{ProductID: 11, Name: "Bread", Price: 2.25, Quantity: 1})

	cart := store.Cart(sess.ID)
	require.Len(t, cart, 2)
	assert.Equal(t, 3, cart[0].Quantity)

	// A second add of the same product bumps the existing line.
	store.AddToCart(sess.ID, CartItem{ProductID: 10, Name: "Apple", Price: 1.50, Quantity: 2})
	cart = store.Cart(sess.ID)
	require.Len(t, cart, 2)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 5, store.CartQuantity(sess.ID, 10))
	assert.Equal(t, 1, store.CartQuantity(sess.ID, 11))
}

func TestRemoveFromCart(t *testing.T) {
	store := NewStore()
	sess := store.Create(1, "alice", "sales")

	store.AddToCart(sess.ID, CartItem{ProductID: 10, Name: "Apple", Price: 1.50, Quantity: 3})
	store.AddToCart(sess.ID, CartItem{ProductID: 11, Name: "Bread", Price: 2.25, Quantity: 1})

	store.RemoveFromCart(sess.ID, 10)
	cart := store.Cart(sess.ID)
	require.Len(t, cart, 1)
	assert.Equal(t, uint(11), cart[0].ProductID)

	// Removing an absent product is a no-op.
	store.RemoveFromCart(sess.ID, 99)
	assert.Len(t, store.Cart(sess.ID), 1)
}

func TestClearCart(t *testing.T) {
	store := NewStore()
	sess := store.Create(1, "alice", "sales")

	store.AddToCart(sess.ID, CartItem{ProductID: 10, Quantity: 2})
	store.ClearCart(sess.ID)
	assert.Empty(t, store.Cart(sess.ID))
}

func TestCart_ReturnsCopy(t *testing.T) {
	store := NewStore()
	sess := store.Create(1, "alice", "sales")
	store.AddToCart(sess.ID, CartItem{ProductID: 10, Quantity: 2})

	cart := store.Cart(sess.ID)
	cart[0].Quantity = 99

	assert.Equal(t, 2, store.CartQuantity(sess.ID, 10))
}

func TestCartOps_UnknownSession(t *testing.T) {
	store := NewStore()

	// None of these should panic or create state.
	store.AddToCart("missing", CartItem{ProductID: 1, Quantity: 1})
	store.RemoveFromCart("missing", 1)
	store.ClearCart("missing")
	assert.Nil(t, store.Cart("missing"))
	assert.Zero(t, store.CartQuantity("missing", 1))
}
