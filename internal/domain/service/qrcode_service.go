package service

// QRCodeService renders checkout links as QR codes so contractors can finish
// the upgrade flow on a phone from the dashboard.
type QRCodeService interface {
	// GenerateCheckoutQR returns a PNG QR code encoding the checkout URL.
	GenerateCheckoutQR(checkoutURL string) ([]byte, error)
}
