package client

import (
	"fmt"
	"io"
	"io/ioutil"
)

const maxReadContentLength int64 = 1024 * 1024 * 10 // 10M

// RPCRawGet http get with raw body result
func RPCRawGet(url string) (string, error) {
	body, err := getBody(url, nil, nil, defaultTimeout)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func getBody(url string, params, headers map[string]string, timeout int) ([]byte, error) {
	resp, err := HTTPGet(url, params, headers, timeout)
	if err != nil {
		return nil, fmt.Errorf("GET request error: %v (url: %v, params: %v)", err, url, params)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("error response status: %v (url: %v)", resp.StatusCode, url)
	}

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxReadContentLength))
	if err != nil {
		return nil, fmt.Errorf("read body error: %v", err)
	}
	return body, nil
}
