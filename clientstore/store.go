// Package clientstore is the client-side mirror of cart and session state:
// an explicit state container with typed actions, loaded from storage at
// construction and saved after every mutation.
package clientstore

import (
	"encoding/json"
	"sync"

	"fashionstore/models"
)

// Storage keys
const (
	keyCartItems       = "cartItems"
	keyShippingAddress = "shippingAddress"
	keyUserInfo        = "userInfo"
)

// CartEntry is one line of the local cart mirror. It carries the product
// fields the UI renders so the cart survives offline.
type CartEntry struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Size      string  `json:"size"`
}

// Credentials is the locally held session.
type Credentials struct {
	UserID  string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// Store holds cart and auth state behind a mutex.
type Store struct {
	mu      sync.Mutex
	storage Storage

	cartItems       []CartEntry
	shippingAddress models.ShippingAddress
	paymentMethod   string
	auth            *Credentials
}

// New builds a store, loading any persisted state.
func New(storage Storage) (*Store, error) {
	s := &Store{
		storage:       storage,
		cartItems:     []CartEntry{},
		paymentMethod: "Razorpay",
	}

	if err := s.load(keyCartItems, &s.cartItems); err != nil {
		return nil, err
	}
	if err := s.load(keyShippingAddress, &s.shippingAddress); err != nil {
		return nil, err
	}
	var creds Credentials
	found, err := s.loadFound(keyUserInfo, &creds)
	if err != nil {
		return nil, err
	}
	if found {
		s.auth = &creds
	}
	return s, nil
}

func (s *Store) load(key string, target interface{}) error {
	_, err := s.loadFound(key, target)
	return err
}

func (s *Store) loadFound(key string, target interface{}) (bool, error) {
	data, found, err := s.storage.Load(key)
	if err != nil || !found {
		return false, err
	}
	return true, json.Unmarshal(data, target)
}

func (s *Store) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.storage.Save(key, data)
}

// AddToCart adds an entry, replacing any existing (product, size) line so
// the mirror follows the server's upsert-by-replace policy.
func (s *Store) AddToCart(entry CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i, existing := range s.cartItems {
		if existing.ProductID == entry.ProductID && existing.Size == entry.Size {
			s.cartItems[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.cartItems = append(s.cartItems, entry)
	}
	return s.save(keyCartItems, s.cartItems)
}

// RemoveFromCart drops the (product, size) line if present.
func (s *Store) RemoveFromCart(productID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cartItems[:0]
	for _, item := range s.cartItems {
		if !(item.ProductID == productID && item.Size == size) {
			kept = append(kept, item)
		}
	}
	s.cartItems = kept
	return s.save(keyCartItems, s.cartItems)
}

// UpdateQuantity sets the quantity of an existing line; unknown lines are
// left untouched.
func (s *Store) UpdateQuantity(productID, size string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cartItems {
		if item.ProductID == productID && item.Size == size {
			s.cartItems[i].Qty = qty
			return s.save(keyCartItems, s.cartItems)
		}
	}
	return nil
}

// ClearCart empties the cart, e.g. after a successful checkout.
func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartItems = []CartEntry{}
	return s.storage.Remove(keyCartItems)
}

// SaveShippingAddress persists the checkout address.
func (s *Store) SaveShippingAddress(addr models.ShippingAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shippingAddress = addr
	return s.save(keyShippingAddress, addr)
}

// SavePaymentMethod records the chosen method. Not persisted; a fresh store
// starts back at the default.
func (s *Store) SavePaymentMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
}

// SetCredentials stores the session after login or registration.
func (s *Store) SetCredentials(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth = &creds
	return s.save(keyUserInfo, creds)
}

// Logout discards the local session. The token itself stays valid until it
// expires; it is merely forgotten here.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth = nil
	return s.storage.Remove(keyUserInfo)
}

// CartItems returns a copy of the current cart lines.
func (s *Store) CartItems() []CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]CartEntry, len(s.cartItems))
	copy(items, s.cartItems)
	return items
}

// ShippingAddress returns the saved checkout address.
func (s *Store) ShippingAddress() models.ShippingAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shippingAddress
}

// PaymentMethod returns the chosen payment method.
func (s *Store) PaymentMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

// Credentials returns the session, if logged in.
func (s *Store) Credentials() (Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth == nil {
		return Credentials{}, false
	}
	return *s.auth, true
}
