package meridian

// State is the lifecycle state of a payment as reported by the gateway.
type State int

const (
	StatePending State = iota
	StateCompleted
	StateCanceled
	StatePartlyPaid
	StatePaymentReview
	StateChargeback
)

var stateNames = map[State]string{
	StatePending:       "pending",
	StateCompleted:     "completed",
	StateCanceled:      "canceled",
	StatePartlyPaid:    "partly",
	StatePaymentReview: "payment review",
	StateChargeback:    "chargeback",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) IsPending() bool       { return s == StatePending }
func (s State) IsCompleted() bool     { return s == StateCompleted }
func (s State) IsCanceled() bool      { return s == StateCanceled }
func (s State) IsPartlyPaid() bool    { return s == StatePartlyPaid }
func (s State) IsPaymentReview() bool { return s == StatePaymentReview }
func (s State) IsChargeback() bool    { return s == StateChargeback }
