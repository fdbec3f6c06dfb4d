package meridian

// Amount is the server-reported amount breakdown of a payment. While the
// payment is not canceled, total = charged + remaining holds.
type Amount struct {
	Total     float64 `json:"total"`
	Charged   float64 `json:"charged"`
	Canceled  float64 `json:"canceled"`
	Remaining float64 `json:"remaining"`
	Currency  string  `json:"currency,omitempty"`
}

// ingest reads an amount fragment. The gateway emits the four amounts as
// formatted strings on some endpoints and as numbers on others.
func (a *Amount) ingest(fragment map[string]interface{}) {
	if v, ok := toFloat(fragment["total"]); ok {
		a.Total = v
	}
	if v, ok := toFloat(fragment["charged"]); ok {
		a.Charged = v
	}
	if v, ok := toFloat(fragment["canceled"]); ok {
		a.Canceled = v
	}
	if v, ok := toFloat(fragment["remaining"]); ok {
		a.Remaining = v
	}
	if c, ok := fragment["currency"].(string); ok {
		a.Currency = c
	}
}
