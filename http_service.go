package meridian

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meridianpay/meridian-go/adapter"
)

// SDK identification, sent with every request.
const (
	SDKType    = "meridian-go"
	SDKVersion = "1.4.0"
)

// httpService turns resource operations into gateway requests: it builds
// the URL and headers, sends the exposed payload through the adapter and
// translates error envelopes into *APIError.
type httpService struct {
	cfg     *Config
	adapter adapter.HTTPAdapter
	log     *zap.Logger
}

func newHTTPService(cfg *Config, a adapter.HTTPAdapter, log *zap.Logger) *httpService {
	return &httpService{cfg: cfg, adapter: a, log: log}
}

// send performs one request for the given resource and returns the decoded
// response body. A non-2xx status or an errors array in the body yields an
// *APIError; transport failures are passed through wrapped.
func (h *httpService) send(ctx context.Context, uri string, resource Resource, method string) (map[string]interface{}, error) {
	var payload []byte
	if method == adapter.MethodPost || method == adapter.MethodPut {
		fields, err := resource.Expose()
		if err != nil {
			return nil, err
		}
		payload, err = json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	url := h.cfg.BaseURL + apiVersionPath + uri
	requestID := uuid.NewString()

	if err := h.adapter.Init(url, payload, method); err != nil {
		return nil, err
	}
	defer h.adapter.Close()

	h.adapter.SetUserAgent(SDKType + "/" + SDKVersion)
	h.adapter.SetHeaders(h.headers(requestID))

	h.log.Debug("sending request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.String("request_id", requestID),
	)

	body, err := h.adapter.Execute(ctx)
	status := h.adapter.ResponseCode()
	if err != nil {
		h.log.Debug("request failed",
			zap.String("uri", uri),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("transport error: %w", err)
	}

	h.log.Debug("received response",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.String("request_id", requestID),
	)

	response := map[string]interface{}{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	if status >= 400 || hasErrorEntries(response) {
		return nil, newAPIError(status, response)
	}
	return response, nil
}

func (h *httpService) headers(requestID string) map[string]string {
	auth := base64.StdEncoding.EncodeToString([]byte(h.cfg.PrivateKey + ":"))
	headers := map[string]string{
		"Authorization": "Basic " + auth,
		"Content-Type":  "application/json",
		"X-Request-Id":  requestID,
		"SDK-TYPE":      SDKType,
		"SDK-VERSION":   SDKVersion,
	}
	if h.cfg.Locale != "" {
		headers["Accept-Language"] = h.cfg.Locale
	}
	return headers
}

func hasErrorEntries(response map[string]interface{}) bool {
	entries, ok := response["errors"].([]interface{})
	return ok && len(entries) > 0
}
