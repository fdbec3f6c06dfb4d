package meridian

// Address is an embedded billing or shipping address.
type Address struct {
	Name    string `json:"name,omitempty"`
	Street  string `json:"street,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// GeoLocation is gateway-derived location information of the request that
// created a resource.
type GeoLocation struct {
	ClientIP    string `json:"clientIp,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}
