package session

import (
	"sync"

	"github.com/google/uuid"
)

// CartItem is one line in a session cart. Name, price and image are copied
// from the product at add time; the price copy is what the sale records.
type CartItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

// Session is everything the server remembers about one logged-in browser:
// who it is and what is in its cart. The cart never touches the database
// until checkout.
type Session struct {
	ID       string
	UserID   uint
	Username string
	Role     string
	Cart     []CartItem
}

// Store keeps sessions by id. All cart mutation goes through the store so
// concurrent requests from the same browser cannot corrupt the slice.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Default is the process-wide store the middleware and handlers share.
var Default = NewStore()

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session with an empty cart and returns it.
func (s *Store) Create(userID uint, username, role string) *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
		Role:     role,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// CartQuantity returns how many units of a product the cart already holds.
func (s *Store) CartQuantity(id string, productID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0
	}
	for _, item := range sess.Cart {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// AddToCart appends a line for the product, or bumps the quantity when a
// line for it already exists.
func (s *Store) AddToCart(id string, item CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	for i := range sess.Cart {
		if sess.Cart[i].ProductID == item.ProductID {
			sess.Cart[i].Quantity += item.Quantity
			return
		}
	}
	sess.Cart = append(sess.Cart, item)
}

// RemoveFromCart filters the product's line out of the cart.
func (s *Store) RemoveFromCart(id string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	kept := sess.Cart[:0]
	for _, item := range sess.Cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	sess.Cart = kept
}

func (s *Store) ClearCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Cart = nil
	}
}

// Cart returns a copy of the cart lines so callers can iterate without
// holding the store lock.
func (s *Store) Cart(id string) []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	out := make([]CartItem, len(sess.Cart))
	copy(out, sess.Cart)
	return out
}
