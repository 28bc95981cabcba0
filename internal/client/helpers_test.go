package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/mcapi/internal/http"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// NewTestClient creates a client without authentication for baseURL.
func NewTestClient(baseURL string) *Client {
	return newClient(internalhttp.NewClient(baseURL, nil), &mcapi.Config{})
}

// recordedRequest is one request seen by a recordingServer.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   map[string]interface{}
}

// recordingServer answers every request with handler and remembers what it
// was sent.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newRecordingServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *recordingServer {
	t.Helper()

	server := &recordingServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorded := recordedRequest{
			Method: request.Method,
			Path:   request.URL.EscapedPath(),
			Query:  request.URL.Query(),
		}

		data, _ := io.ReadAll(request.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &recorded.Body)
		}

		server.mu.Lock()
		server.requests = append(server.requests, recorded)
		server.mu.Unlock()

		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	return server
}

// jsonServer answers every request with status and body encoded as JSON.
func jsonServer(t *testing.T, status int, body interface{}) *recordingServer {
	t.Helper()

	return newRecordingServer(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)

		if body != nil {
			_ = json.NewEncoder(writer).Encode(body)
		}
	})
}

func (s *recordingServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

func (s *recordingServer) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "no request was sent")

	return requests[len(requests)-1]
}

// TestCreateOperation is one create test case.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	// WantNoCall expects the request to be rejected before it is sent.
	WantNoCall bool
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := jsonServer(t, testCase.StatusCode, testCase.Response)
			client := NewTestClient(server.URL)

			result, err := createFunc(client)(context.Background(), testCase.Request)

			if testCase.WantNoCall {
				assert.Empty(t, server.Requests())
			}

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			last := server.Last(t)
			assert.Equal(t, http.MethodPost, last.Method)
			assert.Equal(t, testCase.ExpectedPath, last.Path)
		})
	}
}

// TestGetOperation is one get test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string, *mcapi.QueryParams) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var body interface{}
			if testCase.WantErr {
				body = map[string]interface{}{
					"type":   "https://mailchimp.com/developer/marketing/docs/errors/",
					"title":  "Resource Not Found",
					"status": testCase.StatusCode,
					"detail": "The requested resource could not be found.",
				}
			} else if testCase.Response != nil {
				body = testCase.Response
			}

			server := jsonServer(t, testCase.StatusCode, body)
			client := NewTestClient(server.URL)

			result, err := getFunc(client)(context.Background(), testCase.ID, nil)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			last := server.Last(t)
			assert.Equal(t, http.MethodGet, last.Method)
			assert.Equal(t, testCase.ExpectedPath, last.Path)
		})
	}
}

// TestDeleteOperation is one delete test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	WantErr      bool
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(testCase.StatusCode)
			})
			client := NewTestClient(server.URL)

			err := deleteFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)

			last := server.Last(t)
			assert.Equal(t, http.MethodDelete, last.Method)
			assert.Equal(t, testCase.ExpectedPath, last.Path)
		})
	}
}

// pagedHandler serves total items in pages, honoring offset and count, under
// the given collection key.
func pagedHandler(t *testing.T, key string, total int) func(w http.ResponseWriter, r *http.Request) {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		offset := queryInt(request, "offset")
		count := queryInt(request, "count")

		items := make([]map[string]interface{}, 0, count)
		for i := offset; i < offset+count && i < total; i++ {
			items = append(items, map[string]interface{}{"id": itemID(i)})
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			key:           items,
			"total_items": total,
		})
	}
}

func queryInt(request *http.Request, key string) int {
	value, _ := strconv.Atoi(request.URL.Query().Get(key))

	return value
}

func itemID(i int) string {
	return "item-" + strconv.Itoa(i)
}
