package meridian

// Keypair reports the public key and the payment types available for the
// configured private key.
type Keypair struct {
	baseResource

	PublicKey             string   `json:"publicKey,omitempty"`
	AvailablePaymentTypes []string `json:"availablePaymentTypes,omitempty"`
}

func (k *Keypair) ResourcePath() string { return "keypair" }

func (k *Keypair) Expose() (map[string]interface{}, error) {
	return exposeFields(k)
}

func (k *Keypair) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, k)
}
