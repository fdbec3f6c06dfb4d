package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardAdapterRoundTrip(t *testing.T) {
	var gotMethod, gotAuth, gotAgent, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "s-cst-1"}`))
	}))
	defer server.Close()

	a := NewStandardAdapter(5 * time.Second)
	require.NoError(t, a.Init(server.URL+"/v1/customers", []byte(`{"firstname":"Max"}`), MethodPost))
	a.SetHeaders(map[string]string{"Authorization": "Basic abc"})
	a.SetUserAgent("meridian-go/test")

	body, err := a.Execute(context.Background())
	require.NoError(t, err)
	a.Close()

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Basic abc", gotAuth)
	assert.Equal(t, "meridian-go/test", gotAgent)
	assert.Equal(t, `{"firstname":"Max"}`, gotBody)
	assert.Equal(t, http.StatusCreated, a.ResponseCode())
	assert.JSONEq(t, `{"id": "s-cst-1"}`, string(body))
}

func TestStandardAdapterRejectsUnknownMethod(t *testing.T) {
	a := NewStandardAdapter(time.Second)
	assert.Error(t, a.Init("https://example.com", nil, "PATCH"))
}

func TestStandardAdapterHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	a := NewStandardAdapter(5 * time.Second)
	require.NoError(t, a.Init(server.URL, nil, MethodGet))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Execute(ctx)
	assert.Error(t, err)
}
