package meridian

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resource is implemented by every API-backed entity. A resource with an
// empty id has never been persisted server-side; a resource with an id but
// a nil fetchedAt exists server-side but may be stale locally.
type Resource interface {
	ID() string
	SetID(id string)
	FetchedAt() *time.Time
	SetFetchedAt(t time.Time)

	// Parent is the owning resource, used for hierarchical URI building.
	// It is deliberately separate from the service handle.
	Parent() Resource
	SetParent(parent Resource)

	// Service is the handle used for network operations. It is inherited
	// along the parent chain when not set directly.
	Service() *ResourceService
	LinkService(service *ResourceService)

	// ResourcePath is the path segment of this resource type, e.g.
	// "payments" or "types/card".
	ResourcePath() string

	// Expose returns the request representation of the resource. The
	// contract is round-trip stability: ingesting the exposed form must
	// reproduce an equivalent resource.
	Expose() (map[string]interface{}, error)

	// HandleResponse maps a response fragment onto the resource. Unknown
	// fields are ignored.
	HandleResponse(response map[string]interface{}, method string) error
}

// externalIdentifiable lets a resource be addressed by an external id when
// it has no gateway id yet (customer external id, payment order id).
type externalIdentifiable interface {
	ExternalID() string
}

// ResourceURI builds the REST path of a resource by walking its ownership
// chain. With appendID the resource's own id (or external id) terminates
// the path; without it the path ends at the collection, as used for POST.
func ResourceURI(r Resource, appendID bool) string {
	uri := ""
	if parent := r.Parent(); parent != nil {
		uri = ResourceURI(parent, true)
	}
	uri += "/" + r.ResourcePath()

	if !appendID {
		return uri
	}
	if id := r.ID(); id != "" {
		return uri + "/" + id
	}
	if ext, ok := r.(externalIdentifiable); ok && ext.ExternalID() != "" {
		return uri + "/" + ext.ExternalID()
	}
	return uri
}

// baseResource carries the identity and linkage state shared by all
// resources. It holds no JSON-visible fields of its own.
type baseResource struct {
	id        string
	fetchedAt *time.Time
	parent    Resource
	service   *ResourceService
}

func (b *baseResource) ID() string      { return b.id }
func (b *baseResource) SetID(id string) { b.id = id }

func (b *baseResource) FetchedAt() *time.Time { return b.fetchedAt }
func (b *baseResource) SetFetchedAt(t time.Time) {
	ts := t
	b.fetchedAt = &ts
}

func (b *baseResource) Parent() Resource          { return b.parent }
func (b *baseResource) SetParent(parent Resource) { b.parent = parent }

func (b *baseResource) LinkService(service *ResourceService) { b.service = service }

func (b *baseResource) Service() *ResourceService {
	if b.service != nil {
		return b.service
	}
	if b.parent != nil {
		return b.parent.Service()
	}
	return nil
}

// requireService returns the service handle or the missing-parent error.
func (b *baseResource) requireService() (*ResourceService, error) {
	if s := b.Service(); s != nil {
		return s, nil
	}
	return nil, ErrMissingParentReference
}

// exposeFields reflects the tagged fields of a resource into a JSON-safe
// map, dropping empty values via the omitempty tags.
func exposeFields(resource interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to expose resource: %w", err)
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to expose resource: %w", err)
	}
	return fields, nil
}

// ingestFields maps known response fields onto the tagged fields of a
// resource. Unknown fields are ignored for forward compatibility.
func ingestFields(response map[string]interface{}, resource interface{}) error {
	raw, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to ingest response: %w", err)
	}
	if err := json.Unmarshal(raw, resource); err != nil {
		return fmt.Errorf("failed to ingest response: %w", err)
	}
	return nil
}

// toFloat reads a numeric response value. The gateway emits monetary
// amounts both as JSON numbers and as formatted strings ("100.0000").
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			return f, true
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

func subMap(response map[string]interface{}, key string) (map[string]interface{}, bool) {
	m, ok := response[key].(map[string]interface{})
	return m, ok
}

func stringField(response map[string]interface{}, key string) string {
	s, _ := response[key].(string)
	return s
}
