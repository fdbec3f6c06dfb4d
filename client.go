// Package meridian is a client for the Meridian payment gateway. It
// models payments, customers, baskets, payment types and transactions as
// local resources, keeps them in sync with gateway responses and exposes
// the transaction calls of the API.
package meridian

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/meridianpay/meridian-go/adapter"
)

// Client is the entry point of the SDK. All operations are synchronous:
// one call, at most one round trip, the result ingested before returning.
type Client struct {
	cfg       *Config
	log       *zap.Logger
	transport adapter.HTTPAdapter
	resources *ResourceService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different gateway endpoint, e.g. a
// sandbox.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.cfg.BaseURL = baseURL }
}

// WithTimeout sets the transport timeout of the default adapter.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.cfg.Timeout = timeout }
}

// WithLocale sets the Accept-Language header for localized customer
// messages.
func WithLocale(locale string) Option {
	return func(c *Client) { c.cfg.Locale = locale }
}

// WithLogger enables debug logging of requests and responses.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithAdapter replaces the transport.
func WithAdapter(transport adapter.HTTPAdapter) Option {
	return func(c *Client) { c.transport = transport }
}

// WithConfig replaces the whole config. The private key given to
// NewClient wins when the config carries none.
func WithConfig(cfg *Config) Option {
	return func(c *Client) {
		if cfg.PrivateKey == "" {
			cfg.PrivateKey = c.cfg.PrivateKey
		}
		cfg.applyDefaults()
		c.cfg = cfg
	}
}

// NewClient returns a client authenticated with the given private key.
func NewClient(privateKey string, opts ...Option) (*Client, error) {
	c := &Client{
		cfg: DefaultConfig(privateKey),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}
	if c.transport == nil {
		c.transport = adapter.NewStandardAdapter(c.cfg.Timeout)
	}

	c.resources = newResourceService(newHTTPService(c.cfg, c.transport, c.log))
	return c, nil
}

// Resources exposes the resource service for direct resource operations.
func (c *Client) Resources() *ResourceService { return c.resources }

// transactionOptions collect the optional resources attached to a
// transaction call.
type transactionOptions struct {
	customer  *Customer
	basket    *Basket
	metadata  *Metadata
	orderID   string
	invoiceID string
	card3DS   *bool
}

// TransactionOption attaches optional data to an authorize/charge/payout
// call.
type TransactionOption func(*transactionOptions)

func WithCustomer(customer *Customer) TransactionOption {
	return func(o *transactionOptions) { o.customer = customer }
}

func WithBasket(basket *Basket) TransactionOption {
	return func(o *transactionOptions) { o.basket = basket }
}

func WithMetadata(metadata *Metadata) TransactionOption {
	return func(o *transactionOptions) { o.metadata = metadata }
}

func WithOrderID(orderID string) TransactionOption {
	return func(o *transactionOptions) { o.orderID = orderID }
}

func WithInvoiceID(invoiceID string) TransactionOption {
	return func(o *transactionOptions) { o.invoiceID = invoiceID }
}

// WithCard3DS forces or suppresses the 3-D Secure flow on card
// transactions.
func WithCard3DS(enabled bool) TransactionOption {
	return func(o *transactionOptions) { o.card3DS = &enabled }
}

// Authorize reserves the amount on the payment type and returns the new
// authorization. The payment aggregate is reachable via the result.
func (c *Client) Authorize(ctx context.Context, amount float64, currency string, paymentType PaymentType, returnURL string, opts ...TransactionOption) (*Authorization, error) {
	if !paymentType.Capabilities().Has(CanAuthorize) {
		return nil, &UnsupportedOperationError{Operation: "authorize", PaymentType: paymentType.TypeCode()}
	}

	options := collectOptions(opts)
	payment, err := c.newPayment(ctx, paymentType, options)
	if err != nil {
		return nil, err
	}

	authorization := &Authorization{
		Amount:    amount,
		Currency:  currency,
		ReturnURL: returnURL,
		Card3DS:   options.card3DS,
	}
	payment.SetAuthorization(authorization)

	if err := c.resources.CreateResource(ctx, authorization); err != nil {
		return nil, err
	}
	return authorization, nil
}

// Charge charges the payment type directly (a new payment is opened by
// the gateway) and returns the new charge.
func (c *Client) Charge(ctx context.Context, amount float64, currency string, paymentType PaymentType, returnURL string, opts ...TransactionOption) (*Charge, error) {
	if !paymentType.Capabilities().Has(CanCharge) {
		return nil, &UnsupportedOperationError{Operation: "charge", PaymentType: paymentType.TypeCode()}
	}

	options := collectOptions(opts)
	payment, err := c.newPayment(ctx, paymentType, options)
	if err != nil {
		return nil, err
	}

	charge := &Charge{
		Amount:    amount,
		Currency:  currency,
		ReturnURL: returnURL,
		InvoiceID: options.invoiceID,
	}
	charge.SetParent(payment)
	charge.setPayment(payment)

	if err := c.resources.CreateResource(ctx, charge); err != nil {
		return nil, err
	}
	payment.AddCharge(charge)
	return charge, nil
}

// ChargeAuthorization captures against an authorized payment. A zero
// amount captures the full remaining amount.
func (c *Client) ChargeAuthorization(ctx context.Context, paymentID string, amount float64) (*Charge, error) {
	payment, err := c.resources.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return payment.ChargeAmount(ctx, amount)
}

// ChargePayment charges against the given payment aggregate.
func (c *Client) ChargePayment(ctx context.Context, payment *Payment, amount float64) (*Charge, error) {
	return payment.ChargeAmount(ctx, amount)
}

// CancelAuthorization reverses an authorization. A zero amount reverses
// it fully.
func (c *Client) CancelAuthorization(ctx context.Context, authorization *Authorization, amount float64) (*Cancellation, error) {
	return authorization.Cancel(ctx, amount)
}

// CancelCharge refunds a charge. A zero amount refunds it fully.
func (c *Client) CancelCharge(ctx context.Context, charge *Charge, amount float64, reason string) (*Cancellation, error) {
	return charge.Cancel(ctx, amount, reason)
}

// CancelPayment cancels the whole payment.
func (c *Client) CancelPayment(ctx context.Context, payment *Payment) error {
	return payment.FullCancel(ctx)
}

// CancelPaymentAmount cancels part of a payment across its charges.
func (c *Client) CancelPaymentAmount(ctx context.Context, payment *Payment, amount float64, reason string) ([]*Cancellation, error) {
	return payment.CancelAmount(ctx, amount, reason)
}

// Ship notifies the gateway that the goods of the payment were shipped.
func (c *Client) Ship(ctx context.Context, payment *Payment, invoiceID string) (*Shipment, error) {
	shipment := &Shipment{InvoiceID: invoiceID}
	shipment.SetParent(payment)
	shipment.setPayment(payment)

	if err := c.resources.CreateResource(ctx, shipment); err != nil {
		return nil, err
	}
	payment.AddShipment(shipment)
	return shipment, nil
}

// Payout credits the amount to the account behind the payment type.
func (c *Client) Payout(ctx context.Context, amount float64, currency string, paymentType PaymentType, returnURL string, opts ...TransactionOption) (*Payout, error) {
	if !paymentType.Capabilities().Has(CanPayout) {
		return nil, &UnsupportedOperationError{Operation: "payout", PaymentType: paymentType.TypeCode()}
	}

	options := collectOptions(opts)
	payment, err := c.newPayment(ctx, paymentType, options)
	if err != nil {
		return nil, err
	}

	payout := &Payout{Amount: amount, Currency: currency, ReturnURL: returnURL}
	payout.SetParent(payment)
	payout.setPayment(payment)

	if err := c.resources.CreateResource(ctx, payout); err != nil {
		return nil, err
	}
	payment.SetPayout(payout)
	return payout, nil
}

// ActivateRecurring starts the recurring activation flow on the payment
// type.
func (c *Client) ActivateRecurring(ctx context.Context, paymentType PaymentType, returnURL string) (*Recurring, error) {
	if !paymentType.Capabilities().Has(CanRecur) {
		return nil, &UnsupportedOperationError{Operation: "recurring", PaymentType: paymentType.TypeCode()}
	}
	if err := c.ensureCreated(ctx, paymentType); err != nil {
		return nil, err
	}

	recurring := NewRecurring(paymentType.ID(), returnURL)
	recurring.LinkService(c.resources)

	if err := c.resources.CreateResource(ctx, recurring); err != nil {
		return nil, err
	}
	return recurring, nil
}

// CreatePaymentType persists a locally built payment type.
func (c *Client) CreatePaymentType(ctx context.Context, paymentType PaymentType) error {
	paymentType.LinkService(c.resources)
	return c.resources.CreateResource(ctx, paymentType)
}

// CreateCustomer persists a customer.
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer) error {
	customer.LinkService(c.resources)
	return c.resources.CreateResource(ctx, customer)
}

// UpdateCustomer writes a customer's local state to the gateway.
func (c *Client) UpdateCustomer(ctx context.Context, customer *Customer) error {
	customer.LinkService(c.resources)
	return c.resources.UpdateResource(ctx, customer)
}

// DeleteCustomer removes a customer server-side.
func (c *Client) DeleteCustomer(ctx context.Context, customer *Customer) error {
	customer.LinkService(c.resources)
	return c.resources.DeleteResource(ctx, customer)
}

// CreateOrUpdateCustomer creates the customer, falling back to an update
// of the existing resource when the external customer id is taken.
func (c *Client) CreateOrUpdateCustomer(ctx context.Context, customer *Customer) error {
	err := c.CreateCustomer(ctx, customer)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != CodeCustomerIDAlreadyExists {
		return err
	}

	existing, err := c.resources.FetchCustomerByExternalID(ctx, customer.CustomerID)
	if err != nil {
		return err
	}
	customer.SetID(existing.ID())
	return c.UpdateCustomer(ctx, customer)
}

// CreateBasket persists a basket.
func (c *Client) CreateBasket(ctx context.Context, basket *Basket) error {
	basket.LinkService(c.resources)
	return c.resources.CreateResource(ctx, basket)
}

// UpdateBasket writes a basket's local state to the gateway.
func (c *Client) UpdateBasket(ctx context.Context, basket *Basket) error {
	basket.LinkService(c.resources)
	return c.resources.UpdateResource(ctx, basket)
}

// CreateMetadata persists a metadata resource.
func (c *Client) CreateMetadata(ctx context.Context, metadata *Metadata) error {
	metadata.LinkService(c.resources)
	return c.resources.CreateResource(ctx, metadata)
}

// CreateWebhook subscribes the event to the URL.
func (c *Client) CreateWebhook(ctx context.Context, url, event string) (*Webhook, error) {
	webhook := NewWebhook(url, event)
	webhook.LinkService(c.resources)
	if err := c.resources.CreateResource(ctx, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

// FetchWebhooks lists every webhook subscription of the keypair.
func (c *Client) FetchWebhooks(ctx context.Context) ([]*Webhook, error) {
	return c.resources.FetchWebhooks(ctx)
}

// DeleteWebhook removes a webhook subscription.
func (c *Client) DeleteWebhook(ctx context.Context, webhook *Webhook) error {
	webhook.LinkService(c.resources)
	return c.resources.DeleteResource(ctx, webhook)
}

// Fetch family; thin delegation to the resource service.

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return c.resources.FetchPayment(ctx, paymentID)
}

func (c *Client) FetchPaymentByOrderID(ctx context.Context, orderID string) (*Payment, error) {
	return c.resources.FetchPaymentByOrderID(ctx, orderID)
}

func (c *Client) FetchAuthorization(ctx context.Context, paymentID string) (*Authorization, error) {
	return c.resources.FetchAuthorization(ctx, paymentID)
}

func (c *Client) FetchCharge(ctx context.Context, paymentID, chargeID string) (*Charge, error) {
	return c.resources.FetchCharge(ctx, paymentID, chargeID)
}

func (c *Client) FetchRefund(ctx context.Context, paymentID, chargeID, cancellationID string) (*Cancellation, error) {
	return c.resources.FetchRefund(ctx, paymentID, chargeID, cancellationID)
}

func (c *Client) FetchReversal(ctx context.Context, paymentID, cancellationID string) (*Cancellation, error) {
	return c.resources.FetchReversal(ctx, paymentID, cancellationID)
}

func (c *Client) FetchShipment(ctx context.Context, paymentID, shipmentID string) (*Shipment, error) {
	return c.resources.FetchShipment(ctx, paymentID, shipmentID)
}

func (c *Client) FetchPayout(ctx context.Context, paymentID string) (*Payout, error) {
	return c.resources.FetchPayout(ctx, paymentID)
}

func (c *Client) FetchCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return c.resources.FetchCustomer(ctx, customerID)
}

func (c *Client) FetchCustomerByExternalID(ctx context.Context, externalID string) (*Customer, error) {
	return c.resources.FetchCustomerByExternalID(ctx, externalID)
}

func (c *Client) FetchBasket(ctx context.Context, basketID string) (*Basket, error) {
	return c.resources.FetchBasket(ctx, basketID)
}

func (c *Client) FetchMetadata(ctx context.Context, metadataID string) (*Metadata, error) {
	return c.resources.FetchMetadata(ctx, metadataID)
}

func (c *Client) FetchKeypair(ctx context.Context) (*Keypair, error) {
	return c.resources.FetchKeypair(ctx)
}

func (c *Client) FetchPaymentType(ctx context.Context, typeID string) (PaymentType, error) {
	return c.resources.FetchPaymentType(ctx, typeID)
}

func (c *Client) FetchWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	return c.resources.FetchWebhook(ctx, webhookID)
}

// FetchResourceByURL resolves a gateway URL best-effort; unknown URLs
// yield (nil, nil).
func (c *Client) FetchResourceByURL(ctx context.Context, url string) (Resource, error) {
	return c.resources.FetchResourceByURL(ctx, url)
}

// newPayment builds the local payment aggregate for a transaction call,
// persisting the attached resources that do not exist server-side yet.
func (c *Client) newPayment(ctx context.Context, paymentType PaymentType, options *transactionOptions) (*Payment, error) {
	if err := c.ensureCreated(ctx, paymentType); err != nil {
		return nil, err
	}

	payment := NewPayment(c.resources)
	payment.SetPaymentType(paymentType)
	payment.OrderID = options.orderID

	if options.customer != nil {
		payment.SetCustomer(options.customer)
		if err := c.ensureCreated(ctx, options.customer); err != nil {
			return nil, err
		}
	}
	if options.basket != nil {
		payment.SetBasket(options.basket)
		if err := c.ensureCreated(ctx, options.basket); err != nil {
			return nil, err
		}
	}
	if options.metadata != nil {
		payment.SetMetadata(options.metadata)
		if err := c.ensureCreated(ctx, options.metadata); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// ensureCreated persists a resource that has no gateway id yet.
func (c *Client) ensureCreated(ctx context.Context, resource Resource) error {
	if resource.ID() != "" {
		return nil
	}
	resource.LinkService(c.resources)
	return c.resources.CreateResource(ctx, resource)
}

func collectOptions(opts []TransactionOption) *transactionOptions {
	options := &transactionOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
