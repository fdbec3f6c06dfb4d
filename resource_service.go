package meridian

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianpay/meridian-go/adapter"
	"github.com/meridianpay/meridian-go/internal/ids"
)

// ResourceService orchestrates create/update/fetch/delete calls for the
// resource graph and resolves resources from gateway URLs.
type ResourceService struct {
	http *httpService
}

func newResourceService(http *httpService) *ResourceService {
	return &ResourceService{http: http}
}

// send performs one request for the resource. POST goes to the collection
// URI, every other method addresses the resource itself.
func (s *ResourceService) send(ctx context.Context, resource Resource, method string) (map[string]interface{}, error) {
	appendID := method != adapter.MethodPost
	uri := ResourceURI(resource, appendID)
	return s.http.send(ctx, uri, resource, method)
}

// CreateResource persists the resource. On an error-flagged response the
// resource is left unmodified.
func (s *ResourceService) CreateResource(ctx context.Context, resource Resource) error {
	response, err := s.send(ctx, resource, adapter.MethodPost)
	if err != nil {
		return err
	}
	if isErrorResponse(response) {
		return nil
	}

	if id, ok := response["id"].(string); ok && id != "" {
		resource.SetID(id)
	}
	return resource.HandleResponse(response, adapter.MethodPost)
}

// UpdateResource writes the resource's current state to the gateway. On
// an error-flagged response the resource is left unmodified.
func (s *ResourceService) UpdateResource(ctx context.Context, resource Resource) error {
	response, err := s.send(ctx, resource, adapter.MethodPut)
	if err != nil {
		return err
	}
	if isErrorResponse(response) {
		return nil
	}
	return resource.HandleResponse(response, adapter.MethodPut)
}

// DeleteResource removes the resource server-side. The local object is
// left untouched so callers can inspect it afterwards.
func (s *ResourceService) DeleteResource(ctx context.Context, resource Resource) error {
	_, err := s.send(ctx, resource, adapter.MethodDelete)
	return err
}

// FetchResource loads the resource's server state and stamps fetchedAt.
func (s *ResourceService) FetchResource(ctx context.Context, resource Resource) error {
	response, err := s.send(ctx, resource, adapter.MethodGet)
	if err != nil {
		return err
	}

	// A fetch by external id (order id, customer id) comes back with the
	// gateway id.
	if id, ok := response["id"].(string); ok && id != "" {
		resource.SetID(id)
	}
	resource.SetFetchedAt(time.Now())
	return resource.HandleResponse(response, adapter.MethodGet)
}

// GetResource fetches the resource only when it exists server-side but
// was never fetched locally. This is the single guard against redundant
// round trips.
func (s *ResourceService) GetResource(ctx context.Context, resource Resource) error {
	if resource.FetchedAt() == nil && resource.ID() != "" {
		return s.FetchResource(ctx, resource)
	}
	return nil
}

// FetchResourceByURL resolves a gateway URL (typically from a webhook
// event) to a fetched resource. Resolution is best-effort: URLs without a
// recognizable id yield (nil, nil) rather than an error.
func (s *ResourceService) FetchResourceByURL(ctx context.Context, url string) (Resource, error) {
	resourceID, err := ids.LastResourceID(url)
	if err != nil {
		return nil, nil
	}
	code, err := ids.TypeCode(resourceID)
	if err != nil {
		return nil, nil
	}

	switch code {
	case ids.Payment:
		return s.FetchPayment(ctx, resourceID)
	case ids.Authorize:
		return s.FetchAuthorization(ctx, ids.ResourceIDFromURL(url, ids.Payment))
	case ids.Charge:
		return s.FetchCharge(ctx, ids.ResourceIDFromURL(url, ids.Payment), resourceID)
	case ids.Cancel:
		paymentID := ids.ResourceIDFromURL(url, ids.Payment)
		if chargeID := ids.ResourceIDFromURL(url, ids.Charge); chargeID != "" {
			return s.FetchRefund(ctx, paymentID, chargeID, resourceID)
		}
		return s.FetchReversal(ctx, paymentID, resourceID)
	case ids.Shipment:
		return s.FetchShipment(ctx, ids.ResourceIDFromURL(url, ids.Payment), resourceID)
	case ids.Payout:
		return s.FetchPayout(ctx, ids.ResourceIDFromURL(url, ids.Payment))
	case ids.Customer:
		return s.FetchCustomer(ctx, resourceID)
	case ids.Basket:
		return s.FetchBasket(ctx, resourceID)
	case ids.Metadata:
		return s.FetchMetadata(ctx, resourceID)
	}
	if ids.IsPaymentTypeCode(code) {
		return s.FetchPaymentType(ctx, resourceID)
	}
	return nil, nil
}

// FetchPayment fetches a payment by id.
func (s *ResourceService) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	payment := NewPayment(s)
	payment.SetID(paymentID)
	if err := s.FetchResource(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// FetchPaymentByOrderID fetches a payment by the merchant's order id.
func (s *ResourceService) FetchPaymentByOrderID(ctx context.Context, orderID string) (*Payment, error) {
	payment := NewPayment(s)
	payment.OrderID = orderID
	if err := s.FetchResource(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// FetchAuthorization fetches the authorization of the given payment.
func (s *ResourceService) FetchAuthorization(ctx context.Context, paymentID string) (*Authorization, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	authorization := payment.Authorization()
	if authorization == nil {
		return nil, fmt.Errorf("payment %s has no authorization", paymentID)
	}
	if err := s.FetchResource(ctx, authorization); err != nil {
		return nil, err
	}
	return authorization, nil
}

// FetchCharge fetches one charge of the given payment.
func (s *ResourceService) FetchCharge(ctx context.Context, paymentID, chargeID string) (*Charge, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	charge := payment.Charge(chargeID)
	if charge == nil {
		return nil, fmt.Errorf("payment %s has no charge %s", paymentID, chargeID)
	}
	if err := s.FetchResource(ctx, charge); err != nil {
		return nil, err
	}
	return charge, nil
}

// FetchReversal fetches an authorization cancellation of the given payment.
func (s *ResourceService) FetchReversal(ctx context.Context, paymentID, cancellationID string) (*Cancellation, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	authorization := payment.Authorization()
	if authorization == nil {
		return nil, fmt.Errorf("payment %s has no authorization", paymentID)
	}
	cancellation := authorization.Cancellation(cancellationID)
	if cancellation == nil {
		return nil, fmt.Errorf("authorization of payment %s has no cancellation %s", paymentID, cancellationID)
	}
	return cancellation, nil
}

// FetchRefund fetches a charge cancellation of the given payment.
func (s *ResourceService) FetchRefund(ctx context.Context, paymentID, chargeID, cancellationID string) (*Cancellation, error) {
	charge, err := s.FetchCharge(ctx, paymentID, chargeID)
	if err != nil {
		return nil, err
	}
	cancellation := charge.Cancellation(cancellationID)
	if cancellation == nil {
		return nil, fmt.Errorf("charge %s has no cancellation %s", chargeID, cancellationID)
	}
	if err := s.FetchResource(ctx, cancellation); err != nil {
		return nil, err
	}
	return cancellation, nil
}

// FetchShipment fetches one shipment of the given payment.
func (s *ResourceService) FetchShipment(ctx context.Context, paymentID, shipmentID string) (*Shipment, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	shipment := payment.Shipment(shipmentID)
	if shipment == nil {
		return nil, fmt.Errorf("payment %s has no shipment %s", paymentID, shipmentID)
	}
	return shipment, nil
}

// FetchPayout fetches the payout of the given payment.
func (s *ResourceService) FetchPayout(ctx context.Context, paymentID string) (*Payout, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	payout := payment.Payout()
	if payout == nil {
		return nil, fmt.Errorf("payment %s has no payout", paymentID)
	}
	if err := s.FetchResource(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

// FetchCustomer fetches a customer by gateway id.
func (s *ResourceService) FetchCustomer(ctx context.Context, customerID string) (*Customer, error) {
	customer := &Customer{}
	customer.SetID(customerID)
	customer.LinkService(s)
	if err := s.FetchResource(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// FetchCustomerByExternalID fetches a customer by the merchant-assigned
// customer id.
func (s *ResourceService) FetchCustomerByExternalID(ctx context.Context, externalID string) (*Customer, error) {
	customer := &Customer{CustomerID: externalID}
	customer.LinkService(s)
	if err := s.FetchResource(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// FetchBasket fetches a basket by id.
func (s *ResourceService) FetchBasket(ctx context.Context, basketID string) (*Basket, error) {
	basket := &Basket{}
	basket.SetID(basketID)
	basket.LinkService(s)
	if err := s.FetchResource(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// FetchMetadata fetches a metadata resource by id.
func (s *ResourceService) FetchMetadata(ctx context.Context, metadataID string) (*Metadata, error) {
	metadata := &Metadata{}
	metadata.SetID(metadataID)
	metadata.LinkService(s)
	if err := s.FetchResource(ctx, metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

// FetchKeypair fetches the keypair of the configured private key.
func (s *ResourceService) FetchKeypair(ctx context.Context) (*Keypair, error) {
	keypair := &Keypair{}
	keypair.LinkService(s)
	if err := s.FetchResource(ctx, keypair); err != nil {
		return nil, err
	}
	return keypair, nil
}

// FetchPaymentType fetches a payment type by id, dispatching on the
// embedded type code. Unlike FetchResourceByURL this is a hard contract:
// an unknown code is an error.
func (s *ResourceService) FetchPaymentType(ctx context.Context, typeID string) (PaymentType, error) {
	paymentType, err := newPaymentTypeByID(typeID)
	if err != nil {
		return nil, err
	}
	paymentType.LinkService(s)
	if err := s.FetchResource(ctx, paymentType); err != nil {
		return nil, err
	}
	return paymentType, nil
}

// FetchWebhooks fetches all webhook subscriptions of the keypair.
func (s *ResourceService) FetchWebhooks(ctx context.Context) ([]*Webhook, error) {
	list := &webhookList{}
	list.LinkService(s)
	if err := s.FetchResource(ctx, list); err != nil {
		return nil, err
	}
	return list.webhooks, nil
}

// FetchWebhook fetches a webhook subscription by id.
func (s *ResourceService) FetchWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	webhook := &Webhook{}
	webhook.SetID(webhookID)
	webhook.LinkService(s)
	if err := s.FetchResource(ctx, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

func isErrorResponse(response map[string]interface{}) bool {
	flag, ok := response["isError"].(bool)
	return ok && flag
}
