package meridian

import "strconv"

// Basket details the cart behind a payment. Invoice factoring and other
// insured methods require one.
type Basket struct {
	baseResource

	OrderID             string  `json:"orderId,omitempty"`
	AmountTotalGross    float64 `json:"amountTotalGross,omitempty"`
	AmountTotalDiscount float64 `json:"amountTotalDiscount,omitempty"`
	AmountTotalVat      float64 `json:"amountTotalVat,omitempty"`
	CurrencyCode        string  `json:"currencyCode,omitempty"`
	Note                string  `json:"note,omitempty"`

	Items []*BasketItem `json:"basketItems,omitempty"`
}

// BasketItem is one basket position.
type BasketItem struct {
	// ReferenceID identifies the item within the basket. Items added
	// without one are assigned their insertion index.
	ReferenceID string `json:"basketItemReferenceId,omitempty"`

	Title          string  `json:"title,omitempty"`
	SubTitle       string  `json:"subTitle,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	Quantity       int     `json:"quantity,omitempty"`
	AmountPerUnit  float64 `json:"amountPerUnit,omitempty"`
	AmountGross    float64 `json:"amountGross,omitempty"`
	AmountNet      float64 `json:"amountNet,omitempty"`
	AmountVat      float64 `json:"amountVat,omitempty"`
	AmountDiscount float64 `json:"amountDiscount,omitempty"`
	Vat            float64 `json:"vat,omitempty"`
	Type           string  `json:"type,omitempty"`
}

// NewBasket returns a basket for the given order.
func NewBasket(orderID string, amountTotalGross float64, currencyCode string) *Basket {
	return &Basket{
		OrderID:          orderID,
		AmountTotalGross: amountTotalGross,
		CurrencyCode:     currencyCode,
	}
}

func (b *Basket) ResourcePath() string { return "baskets" }

// AddItem appends an item. An item without a reference id receives its
// insertion index as reference id, so the n-th such item gets "n-1".
func (b *Basket) AddItem(item *BasketItem) *Basket {
	if item.ReferenceID == "" {
		item.ReferenceID = strconv.Itoa(len(b.Items))
	}
	b.Items = append(b.Items, item)
	return b
}

// ItemByIndex returns the i-th item in insertion order, or nil.
func (b *Basket) ItemByIndex(i int) *BasketItem {
	if i < 0 || i >= len(b.Items) {
		return nil
	}
	return b.Items[i]
}

// ItemCount returns the number of items in the basket.
func (b *Basket) ItemCount() int { return len(b.Items) }

func (b *Basket) Expose() (map[string]interface{}, error) {
	return exposeFields(b)
}

func (b *Basket) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, b)
}
