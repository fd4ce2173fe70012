package errors

// Machine-readable error codes, format CATEGORY_SPECIFIC_DETAIL. The
// storefront client maps these to user-facing messages; in particular it
// purges stored credentials and redirects to login on any AUTH_ 401.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"
	AuthPasswordMismatch   = "AUTH_PASSWORD_MISMATCH"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Catalog (PRODUCT_) ====================
	ProductNotFound     = "PRODUCT_NOT_FOUND"
	ProductInvalidPrice = "PRODUCT_INVALID_PRICE"

	// ==================== Cart (CART_) ====================
	CartItemNotFound = "CART_ITEM_NOT_FOUND"
	CartEmpty        = "CART_EMPTY"

	// ==================== Bundle (BUNDLE_) ====================
	BundleEmptySelection = "BUNDLE_EMPTY_SELECTION"
	BundleIneligibleItem = "BUNDLE_INELIGIBLE_ITEM"
	BundleUnknownProduct = "BUNDLE_UNKNOWN_PRODUCT"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound      = "ORDER_NOT_FOUND"
	OrderInvalidStatus = "ORDER_INVALID_STATUS"

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutInFlight = "CHECKOUT_IN_FLIGHT"

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
