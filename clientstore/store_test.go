package clientstore

import (
	"testing"

	"fashionstore/models"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	store, err := New(storage)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return store
}

func TestAddToCartReplacesSameProductAndSize(t *testing.T) {
	store := newTestStore(t, t.TempDir())

	if err := store.AddToCart(CartEntry{ProductID: "p1", Qty: 2, Size: "M", Price: 29.99}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.AddToCart(CartEntry{ProductID: "p1", Qty: 5, Size: "M", Price: 29.99}); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := store.CartItems()
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Qty != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Qty)
	}
}

func TestAddToCartKeepsDistinctSizes(t *testing.T) {
	store := newTestStore(t, t.TempDir())

	store.AddToCart(CartEntry{ProductID: "p1", Qty: 1, Size: "M"})
	store.AddToCart(CartEntry{ProductID: "p1", Qty: 1, Size: "L"})

	if got := len(store.CartItems()); got != 2 {
		t.Fatalf("expected two lines, got %d", got)
	}
}

func TestCartStatePersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()

	first := newTestStore(t, dir)
	first.AddToCart(CartEntry{ProductID: "p1", Name: "Shirt", Qty: 2, Size: "M", Price: 29.99})
	first.SaveShippingAddress(models.ShippingAddress{
		Address: "123 Demo St", City: "Demo City", PostalCode: "12345", Country: "US",
	})

	second := newTestStore(t, dir)
	items := second.CartItems()
	if len(items) != 1 || items[0].Name != "Shirt" {
		t.Fatalf("cart did not survive reload: %+v", items)
	}
	if second.ShippingAddress().City != "Demo City" {
		t.Fatalf("shipping address did not survive reload: %+v", second.ShippingAddress())
	}
}

func TestPaymentMethodDefaultsAndIsNotPersisted(t *testing.T) {
	dir := t.TempDir()

	first := newTestStore(t, dir)
	if first.PaymentMethod() != "Razorpay" {
		t.Fatalf("expected Razorpay default, got %q", first.PaymentMethod())
	}
	first.SavePaymentMethod("COD")

	second := newTestStore(t, dir)
	if second.PaymentMethod() != "Razorpay" {
		t.Fatalf("payment method should reset on a fresh store, got %q", second.PaymentMethod())
	}
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	store.AddToCart(CartEntry{ProductID: "p1", Qty: 1, Size: "M"})
	store.AddToCart(CartEntry{ProductID: "p2", Qty: 1, Size: "S"})

	if err := store.UpdateQuantity("p1", "M", 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if items := store.CartItems(); items[0].Qty != 4 {
		t.Fatalf("expected quantity 4, got %d", items[0].Qty)
	}

	if err := store.RemoveFromCart("p2", "S"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(store.CartItems()); got != 1 {
		t.Fatalf("expected one line after remove, got %d", got)
	}
}

func TestClearCart(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)
	store.AddToCart(CartEntry{ProductID: "p1", Qty: 1, Size: "M"})

	if err := store.ClearCart(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(store.CartItems()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}

	reloaded := newTestStore(t, dir)
	if got := len(reloaded.CartItems()); got != 0 {
		t.Fatalf("cleared cart came back after reload: %d lines", got)
	}
}

func TestCredentialsLifecycle(t *testing.T) {
	dir := t.TempDir()

	store := newTestStore(t, dir)
	if _, ok := store.Credentials(); ok {
		t.Fatal("fresh store should have no session")
	}

	store.SetCredentials(Credentials{UserID: "u1", Name: "John Doe", Email: "john@example.com", Token: "tok"})

	reloaded := newTestStore(t, dir)
	creds, ok := reloaded.Credentials()
	if !ok || creds.Email != "john@example.com" {
		t.Fatalf("session did not survive reload: %+v", creds)
	}

	if err := reloaded.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := reloaded.Credentials(); ok {
		t.Fatal("session should be gone after logout")
	}

	again := newTestStore(t, dir)
	if _, ok := again.Credentials(); ok {
		t.Fatal("logged-out session came back after reload")
	}
}
