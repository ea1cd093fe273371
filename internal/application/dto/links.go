package dto

type BuildPaymentLinkCommand struct {
	PayeeName string
	UPIID     string
	Amount    *float64
	Note      string
}

type BuildPaymentLinkOutput struct {
	UPILink   string `json:"upi_link"`
	QRCodeURL string `json:"qr_code_url"`
}
