package models

// ShippingSettings is the server-held shipping singleton. There is exactly
// one record, addressed without an identifier.
type ShippingSettings struct {
	Method            string  `json:"method"            validate:"required"`
	Cost              float64 `json:"cost"              validate:"numeric,gte=0"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

// PaymentMethods is the server-held payment channel singleton.
// Every channel is optional free text.
type PaymentMethods struct {
	Bank     string `json:"bank"`
	PayPal   string `json:"paypal"`
	Skype    string `json:"skype"`
	Bitcoin  string `json:"bitcoin"`
	Ethereum string `json:"ethereum"`
	USDT     string `json:"usdt"`
}
