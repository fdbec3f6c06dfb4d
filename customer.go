package meridian

// Customer holds the personal data attached to payments. It can be
// addressed by its gateway id or by the merchant-assigned external
// customer id.
type Customer struct {
	baseResource

	Firstname  string `json:"firstname,omitempty"`
	Lastname   string `json:"lastname,omitempty"`
	Salutation string `json:"salutation,omitempty"`
	BirthDate  string `json:"birthDate,omitempty"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Mobile     string `json:"mobile,omitempty"`

	// CustomerID is the merchant's own identifier, unique per keypair.
	CustomerID string `json:"customerId,omitempty"`

	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

// NewCustomer returns a customer with the given name.
func NewCustomer(firstname, lastname string) *Customer {
	return &Customer{Firstname: firstname, Lastname: lastname}
}

func (c *Customer) ResourcePath() string { return "customers" }

// ExternalID lets a customer without a gateway id be fetched by the
// merchant-assigned customer id.
func (c *Customer) ExternalID() string { return c.CustomerID }

func (c *Customer) Expose() (map[string]interface{}, error) {
	return exposeFields(c)
}

func (c *Customer) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, c)
}
