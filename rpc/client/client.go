// Package client provides methods to do http GET request against the
// ledger gateways.
package client

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"
)

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
	httpCtx        = context.Background()
)

const (
	defaultTimeout int = 20

	maxIdleConns        int = 100
	maxIdleConnsPerHost int = 10
	maxConnsPerHost     int = 50
	idleConnTimeout     int = 90
)

// InitHTTPClient init http client
func InitHTTPClient() {
	httpClientOnce.Do(func() {
		httpClient = createHTTPClient()
	})
}

// createHTTPClient for connection re-use
func createHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxConnsPerHost:     maxConnsPerHost,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     time.Duration(idleConnTimeout) * time.Second,
		},
		Timeout: time.Duration(defaultTimeout) * time.Second,
	}
}

// HTTPGet http get
func HTTPGet(url string, params, headers map[string]string, timeout int) (*http.Response, error) {
	req, err := http.NewRequestWithContext(httpCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	addParams(req, params)
	addHeaders(req, headers)

	return doRequest(req, timeout)
}

func addParams(req *http.Request, params map[string]string) {
	if params != nil {
		q := req.URL.Query()
		for key, val := range params {
			q.Add(key, val)
		}
		req.URL.RawQuery = q.Encode()
	}
}

func addHeaders(req *http.Request, headers map[string]string) {
	for key, val := range headers {
		req.Header.Add(key, val)
	}
}

func doRequest(req *http.Request, timeoutSeconds int) (*http.Response, error) {
	InitHTTPClient()
	cli := httpClient
	if timeoutSeconds > 0 && timeoutSeconds != defaultTimeout {
		clientCopy := *httpClient
		clientCopy.Timeout = time.Duration(timeoutSeconds) * time.Second
		cli = &clientCopy
	}
	return cli.Do(req)
}
