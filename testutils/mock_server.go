package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

var (
	mockMx       sync.RWMutex
	mockHandlers []mockHandler
	mockServer   *httptest.Server
)

type mockHandler struct {
	matcher func(r *http.Request) bool
	handle  func(w http.ResponseWriter, r *http.Request)
}

// StartMockServer starts a server that answers with the first matching handler, or 404
func StartMockServer() {
	mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mockMx.RLock()
		handlers := mockHandlers
		mockMx.RUnlock()
		for _, handler := range handlers {
			if handler.matcher(r) {
				handler.handle(w, r)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func StopMockServer() {
	mockServer.Close()
}

func AddHandler(pathMatcher func(string) bool, handler func(http.ResponseWriter, *http.Request)) {
	AddRequestHandler(func(r *http.Request) bool {
		return pathMatcher(r.URL.Path)
	}, handler)
}

func AddRequestHandler(matcher func(*http.Request) bool, handler func(http.ResponseWriter, *http.Request)) {
	mockMx.Lock()
	defer mockMx.Unlock()
	mockHandlers = append(mockHandlers, mockHandler{
		matcher: matcher,
		handle:  handler,
	})
}

func ClearHandlers() {
	mockMx.Lock()
	defer mockMx.Unlock()
	mockHandlers = nil
}

func Contains(submatch string) func(string) bool {
	return func(path string) bool {
		return strings.Contains(path, submatch)
	}
}

// Method matches requests with the given method and a path containing submatch
func Method(method string, submatch string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return r.Method == method && strings.Contains(r.URL.Path, submatch)
	}
}

func GetMockServerUrl() string {
	return mockServer.URL
}

// GetMockServerAddress returns host and port of the mock server
func GetMockServerAddress() (string, int) {
	serverUrl, err := url.Parse(mockServer.URL)
	if err != nil {
		panic(err)
	}
	port, err := strconv.Atoi(serverUrl.Port())
	if err != nil {
		panic(err)
	}
	return serverUrl.Hostname(), port
}
