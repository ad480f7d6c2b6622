package errs

// Domain sentinels shared by the use case layer and the HTTP boundary.
// The message of each sentinel is the stable machine-readable code returned to clients.
var (
	// Offer errors
	ErrOfferNotFound = New("offer_not_found")
	ErrOfferExpired  = New("offer_expired")

	// Order errors
	ErrOrderNotFound = New("order_not_found")

	// Fleet errors
	ErrVehicleNotFound    = New("vehicle_not_found")
	ErrZoneNotFound       = New("zone_not_found")
	ErrVehicleUnavailable = New("vehicle_unavailable")

	// Payment errors
	ErrPaymentDeclined = New("payment_declined")

	// Upstream errors
	ErrExternalServiceUnavailable = New("external_service_unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrArchiveFailed           = New("archive operation failed")
)
