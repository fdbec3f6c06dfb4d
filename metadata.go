package meridian

// Metadata attaches free-form merchant data to a payment. The shop and
// SDK fields are fixed; everything else rides in the custom map. On the
// wire the custom entries are flattened next to the fixed fields.
type Metadata struct {
	baseResource

	ShopType    string
	ShopVersion string

	custom map[string]string
}

const (
	metadataKeyShopType    = "shopType"
	metadataKeyShopVersion = "shopVersion"
	metadataKeySDKType     = "sdkType"
	metadataKeySDKVersion  = "sdkVersion"
)

func (m *Metadata) ResourcePath() string { return "metadata" }

// Set stores a custom metadata entry. Keys colliding with the fixed
// fields are ignored.
func (m *Metadata) Set(key, value string) *Metadata {
	switch key {
	case metadataKeyShopType, metadataKeyShopVersion, metadataKeySDKType, metadataKeySDKVersion:
		return m
	}
	if m.custom == nil {
		m.custom = map[string]string{}
	}
	m.custom[key] = value
	return m
}

// Get returns a custom metadata entry.
func (m *Metadata) Get(key string) string { return m.custom[key] }

func (m *Metadata) Expose() (map[string]interface{}, error) {
	fields := map[string]interface{}{
		metadataKeySDKType:    SDKType,
		metadataKeySDKVersion: SDKVersion,
	}
	if m.ShopType != "" {
		fields[metadataKeyShopType] = m.ShopType
	}
	if m.ShopVersion != "" {
		fields[metadataKeyShopVersion] = m.ShopVersion
	}
	for key, value := range m.custom {
		fields[key] = value
	}
	return fields, nil
}

func (m *Metadata) HandleResponse(response map[string]interface{}, method string) error {
	for key, raw := range response {
		value, ok := raw.(string)
		if !ok {
			continue
		}
		switch key {
		case metadataKeyShopType:
			m.ShopType = value
		case metadataKeyShopVersion:
			m.ShopVersion = value
		case metadataKeySDKType, metadataKeySDKVersion, "id":
			// SDK identification is not read back; id is handled by the
			// resource service.
		default:
			if m.custom == nil {
				m.custom = map[string]string{}
			}
			m.custom[key] = value
		}
	}
	return nil
}
