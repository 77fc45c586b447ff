// internal/state/session.go
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/livrestore/storefront/internal/models"
)

var (
	ErrNotAuthenticated = errors.New("no active user on session")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrChatBusy         = errors.New("assistant reply already pending")
	ErrChatUnavailable  = errors.New("product view is not open")
)

// Session owns the full client-side state of one storefront tab: current
// view, selected product, search query, cart, order ledger, seller listings,
// active user and the per-product seller-chat transcripts. Everything lives
// in memory for the lifetime of the session and nowhere else.
//
// Handlers run concurrently, so every accessor takes the session lock even
// though each browser session is logically a single event stream.
type Session struct {
	mu sync.Mutex

	id              string
	view            models.View
	selectedProduct *models.Product
	searchQuery     string
	user            *models.User
	cart            []models.CartItem
	orders          []models.Order
	listings        []models.Product
	chats           map[string]*chat
	lastSeen        time.Time
}

// chat is the seller-chat state machine scoped to one product-detail view
// instance. It dies with the view: navigating away cancels any in-flight
// assistant call and discards the transcript.
type chat struct {
	turns    []models.ChatTurn
	awaiting bool
	gen      uint64
	cancel   context.CancelFunc
}

func newSession(id string) *Session {
	return &Session{
		id:       id,
		view:     models.ViewHome,
		chats:    make(map[string]*chat),
		lastSeen: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) touchLocked() { s.lastSeen = time.Now() }

// Navigate sets the current view, redirecting gated views to registration
// when no user is active. It never fails; the resulting view is returned.
func (s *Session) Navigate(target models.View) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigateLocked(target)
}

func (s *Session) navigateLocked(target models.View) models.View {
	s.touchLocked()
	if target.RequiresAuth() && s.user == nil {
		target = models.ViewRegister
	}
	if target != models.ViewProduct && s.selectedProduct != nil {
		// Leaving the product view ends that product's chat session.
		s.closeChatLocked(s.selectedProduct.ID)
		s.selectedProduct = nil
	}
	s.view = target
	return target
}

// SelectProduct opens the product-detail view for p.
func (s *Session) SelectProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.selectedProduct != nil && s.selectedProduct.ID != p.ID {
		s.closeChatLocked(s.selectedProduct.ID)
	}
	cp := p
	s.selectedProduct = &cp
	s.view = models.ViewProduct
}

// Search stores the query and switches to the search view. A new query
// fully replaces the previous filter.
func (s *Session) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.searchQuery = query
	s.navigateLocked(models.ViewSearch)
}

func (s *Session) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// --- identity ---

// SetUser replaces the active identity and lands on home.
func (s *Session) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	cp := u
	s.user = &cp
	s.navigateLocked(models.ViewHome)
}

// ClearUser logs the session out and lands on home.
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.user = nil
	s.navigateLocked(models.ViewHome)
}

// User returns a copy of the active user, or nil when unauthenticated.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// --- cart ---

// AddToCart merges by product id: an already-present product gains quantity
// instead of a duplicate line. New lines append at the end. Always navigates
// to the cart view.
func (s *Session) AddToCart(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			s.navigateLocked(models.ViewCart)
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{Product: p, Quantity: 1})
	s.navigateLocked(models.ViewCart)
}

// RemoveFromCart deletes the line item; removing an absent id is a no-op.
func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the matching line; absent ids are a
// no-op. Quantity bounds are enforced by the caller.
func (s *Session) UpdateQuantity(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = qty
			return
		}
	}
}

// Cart returns a copy of the line items in insertion order.
func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.cart)
}

// Subtotal is the derived sum of price times quantity over the cart.
func (s *Session) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.cart)
}

func subtotalOf(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// --- orders ---

// Checkout converts the cart into an order: items are snapshot copies, the
// total is the subtotal at this instant, status always starts as preparing.
// The cart is emptied and the session lands on the orders view. The empty
// cart case is unreachable through the gated UI flow and rejected here
// defensively.
func (s *Session) Checkout(method models.PaymentMethod, orderID, trackingNumber string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.user == nil {
		return nil, ErrNotAuthenticated
	}
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		ID:             orderID,
		Items:          copyItems(s.cart),
		Total:          subtotalOf(s.cart),
		Status:         models.OrderStatusPreparing,
		Date:           time.Now(),
		TrackingNumber: trackingNumber,
		Address:        s.user.Address,
		PaymentMethod:  method,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil
	s.navigateLocked(models.ViewOrders)

	cp := order
	cp.Items = copyItems(order.Items)
	return &cp, nil
}

// Orders returns the ledger most-recent-first.
func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = copyItems(o.Items)
		out[i] = o
	}
	return out
}

// --- listings ---

// AddListing prepends the product to the seller's own listings and lands on
// the seller dashboard.
func (s *Session) AddListing(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.listings = append([]models.Product{p}, s.listings...)
	s.navigateLocked(models.ViewDashboardSeller)
}

// Listings returns the seller's own products, most recent first.
func (s *Session) Listings() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.listings))
	copy(out, s.listings)
	return out
}

// --- seller chat ---

// BeginChat appends the user turn optimistically and moves the product's
// chat into awaiting-reply. The returned context is cancelled if the session
// navigates away before the reply lands; the generation token must be given
// back to FinishChat so a stale reply cannot touch a newer transcript.
func (s *Session) BeginChat(productID, message string) (context.Context, uint64, []models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.view != models.ViewProduct || s.selectedProduct == nil || s.selectedProduct.ID != productID {
		return nil, 0, nil, ErrChatUnavailable
	}

	c, ok := s.chats[productID]
	if !ok {
		c = &chat{}
		s.chats[productID] = c
	}
	if c.awaiting {
		return nil, 0, nil, ErrChatBusy
	}

	history := make([]models.ChatTurn, len(c.turns))
	copy(history, c.turns)

	c.turns = append(c.turns, models.ChatTurn{
		Role:    models.ChatRoleUser,
		Content: message,
		At:      time.Now(),
	})
	c.awaiting = true
	c.gen++

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	return ctx, c.gen, history, nil
}

// FinishChat appends the model turn and returns the chat to idle. The turn
// is dropped when the chat was closed or superseded in the meantime.
func (s *Session) FinishChat(productID string, gen uint64, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[productID]
	if !ok || c.gen != gen {
		return false
	}
	c.turns = append(c.turns, models.ChatTurn{
		Role:    models.ChatRoleModel,
		Content: content,
		At:      time.Now(),
	})
	c.awaiting = false
	c.cancel = nil
	return true
}

// Transcript returns the chat turns for a product plus the awaiting flag.
func (s *Session) Transcript(productID string) ([]models.ChatTurn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[productID]
	if !ok {
		return nil, false
	}
	out := make([]models.ChatTurn, len(c.turns))
	copy(out, c.turns)
	return out, c.awaiting
}

func (s *Session) closeChatLocked(productID string) {
	if c, ok := s.chats[productID]; ok {
		if c.cancel != nil {
			c.cancel()
		}
		delete(s.chats, productID)
	}
}

// --- snapshot ---

// Snapshot is the read-only state exposed to the rendering layer.
type Snapshot struct {
	SessionID       string            `json:"session_id"`
	CurrentView     models.View       `json:"current_view"`
	SelectedProduct *models.Product   `json:"selected_product,omitempty"`
	SearchQuery     string            `json:"search_query"`
	User            *models.User      `json:"user,omitempty"`
	Cart            []models.CartItem `json:"cart"`
	CartCount       int               `json:"cart_count"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Orders          []models.Order    `json:"orders"`
	Listings        []models.Product  `json:"listings"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		SessionID:   s.id,
		CurrentView: s.view,
		SearchQuery: s.searchQuery,
		Cart:        copyItems(s.cart),
		Subtotal:    subtotalOf(s.cart),
		Orders:      make([]models.Order, len(s.orders)),
		Listings:    make([]models.Product, len(s.listings)),
	}
	for _, item := range s.cart {
		snap.CartCount += item.Quantity
	}
	if s.selectedProduct != nil {
		cp := *s.selectedProduct
		snap.SelectedProduct = &cp
	}
	if s.user != nil {
		cp := *s.user
		snap.User = &cp
	}
	for i, o := range s.orders {
		o.Items = copyItems(o.Items)
		snap.Orders[i] = o
	}
	copy(snap.Listings, s.listings)
	return snap
}

// CurrentView returns the view selector.
func (s *Session) CurrentView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
