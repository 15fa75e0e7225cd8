package helpers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// RecordedRequest is what the MockServer saw for one incoming request.
type RecordedRequest struct {
	Method string
	Header http.Header
	Query  string
	Body   []byte
}

/**
 * MockServer is a simple HTTP server meant to be used in tests to mock responses.
 * It works by matching the path of the request to a response that was added to
 * the server using the AddResponse method. Every request is recorded so tests
 * can assert on what the client sent.
 *
 * Example:
 *   func TestMockHttpServer(t *testing.T) {
 *  	server := NewMockServer()
 *  	defer server.Close()
 *
 *  	server.AddStringResponse("/string-path", "string body")
 *  	server.AddJSONResponse("/json-path", map[string]any{"key": "value"})
 *
 *  	// Use server.URL() in your tests to make requests to the server.
 *  	assert.HTTPBodyContains(t, server.ServeHTTP, "GET", server.URL()+"/string-path", nil, "string body")
 *
 *  	assert.Equal(t, 1, server.GetHitCount("/string-path"))
 *  	assert.Len(t, server.Requests("/string-path"), 1)
 *   }
 */
type MockServer struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]mockResponse
	hitCount  map[string]int
	requests  map[string][]RecordedRequest
}

type mockResponse struct {
	statusCode int
	body       []byte
}

func NewMockServer() *MockServer {
	mockServer := &MockServer{}
	mockServer.Reset()
	server := httptest.NewServer(mockServer)
	mockServer.server = server
	return mockServer
}

func (m *MockServer) Close() {
	m.server.Close()
}

func (m *MockServer) URL() string {
	return m.server.URL
}

func (m *MockServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// this is weird, but works. `r.URL` doesn't include the protocol or host,
	// so we need to add figure those parts out ourselves. Luckily, if we end up
	// here, we know that the URL is this server's URL :win:
	url := m.URL() + r.URL.Path

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("Failed to read request body", "path", url, "error", err)
	}

	m.mu.Lock()
	m.hitCount[url]++
	m.requests[url] = append(m.requests[url], RecordedRequest{
		Method: r.Method,
		Header: r.Header.Clone(),
		Query:  r.URL.RawQuery,
		Body:   body,
	})
	response, ok := m.responses[url]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		slog.Warn("No response found for path", "path", url)
		return
	}
	w.WriteHeader(response.statusCode)
	io.Copy(w, bytes.NewReader(response.body))
}

func (m *MockServer) absolute(path string) string {
	if !strings.HasPrefix(path, "http") {
		return m.URL() + path
	}
	return path
}

func (m *MockServer) GetHitCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hitCount[m.absolute(path)]
}

// Requests returns every request received on path, oldest first.
func (m *MockServer) Requests(path string) []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests[m.absolute(path)]...)
}

func (m *MockServer) AddResponse(path string, statusCode int, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[m.absolute(path)] = mockResponse{statusCode: statusCode, body: body}
}

func (m *MockServer) AddJSONResponse(path string, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		slog.Error("Failed to marshal response body", "error", err)
		panic(err)
	}
	m.AddResponse(path, http.StatusOK, jsonBody)
}

func (m *MockServer) AddStringResponse(path string, body string) {
	m.AddResponse(path, http.StatusOK, []byte(body))
}

func (m *MockServer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = make(map[string]mockResponse)
	m.hitCount = make(map[string]int)
	m.requests = make(map[string][]RecordedRequest)
}
