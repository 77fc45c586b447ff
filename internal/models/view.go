// internal/models/view.go
package models

// View is the single-selection screen state of the storefront client.
type View string

const (
	ViewHome            View = "home"
	ViewProduct         View = "product"
	ViewCart            View = "cart"
	ViewSell            View = "sell"
	ViewSearch          View = "search"
	ViewRegister        View = "register"
	ViewLogin           View = "login"
	ViewDashboardSeller View = "dashboard-seller"
	ViewCheckout        View = "checkout"
	ViewOrders          View = "orders"
)

// Capability a view demands from the session before it may become current.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityAuthenticated
)

// ViewCapabilities is the navigation gate: views absent from the map are open
// to everyone. Attempting a gated view without the capability redirects to the
// registration view instead of failing.
var ViewCapabilities = map[View]Capability{
	ViewSell:            CapabilityAuthenticated,
	ViewDashboardSeller: CapabilityAuthenticated,
	ViewCheckout:        CapabilityAuthenticated,
}

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewProduct, ViewCart, ViewSell, ViewSearch,
		ViewRegister, ViewLogin, ViewDashboardSeller, ViewCheckout, ViewOrders:
		return true
	}
	return false
}

// RequiresAuth reports whether the navigation gate demands an active user.
func (v View) RequiresAuth() bool {
	return ViewCapabilities[v] == CapabilityAuthenticated
}
