// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired        = "auth.required"
	KeyAuthInvalidToken    = "auth.invalid_token"
	KeyAuthTokenExpired    = "auth.token_expired"
	KeyAuthLoginSuccess    = "auth.login_success"
	KeyAuthLogoutSuccess   = "auth.logout_success"
	KeyAuthRegisterSuccess = "auth.register_success"

	// Navigation
	KeyNavigationInvalidView = "navigation.invalid_view"

	// Products and search
	KeyProductNotFound    = "product.not_found"
	KeySearchNoResults    = "search.no_results"
	KeySearchResultsFound = "search.results_found"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartUpdated     = "cart.updated"

	// Orders
	KeyOrderPlaced    = "order.placed"
	KeyOrderEmptyCart = "order.empty_cart"

	// Listings
	KeyListingCreated     = "listing.created"
	KeyListingDraftFailed = "listing.draft_failed"

	// Seller chat
	KeyChatBusy        = "chat.busy"
	KeyChatUnavailable = "chat.unavailable"

	// External assistant
	KeyAssistantUnavailable = "assistant.unavailable"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
