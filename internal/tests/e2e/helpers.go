package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the payments API
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Response is a decoded API reply. Exactly one of Payment, Payments or Error
// is filled, depending on the endpoint and the status.
type Response struct {
	Status   int
	Header   http.Header
	Payment  *rest.Payment
	Payments []rest.Payment
	Error    *rest.ErrorDetail
}

func (c *TestClient) Create(t *testing.T, body any) Response {
	return c.do(t, http.MethodPost, "/payments", body, false)
}

func (c *TestClient) List(t *testing.T) Response {
	return c.do(t, http.MethodGet, "/payments", nil, true)
}

func (c *TestClient) Get(t *testing.T, id int64) Response {
	return c.do(t, http.MethodGet, "/payments/"+strconv.FormatInt(id, 10), nil, false)
}

func (c *TestClient) GetByReference(t *testing.T, reference string) Response {
	return c.do(t, http.MethodGet, "/payments/ref/"+reference, nil, false)
}

func (c *TestClient) Update(t *testing.T, id int64, body any) Response {
	return c.do(t, http.MethodPut, "/payments/"+strconv.FormatInt(id, 10), body, false)
}

func (c *TestClient) Delete(t *testing.T, id int64) Response {
	return c.do(t, http.MethodDelete, "/payments/"+strconv.FormatInt(id, 10), nil, false)
}

func (c *TestClient) do(t *testing.T, method, path string, body any, list bool) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode, Header: resp.Header}
	switch {
	case len(bodyBytes) == 0:
	case resp.StatusCode >= 400:
		var errResp rest.ErrorResponse
		require.NoError(t, json.Unmarshal(bodyBytes, &errResp))
		out.Error = &errResp.Error
	case list:
		require.NoError(t, json.Unmarshal(bodyBytes, &out.Payments))
	default:
		out.Payment = &rest.Payment{}
		require.NoError(t, json.Unmarshal(bodyBytes, out.Payment))
	}
	return out
}
