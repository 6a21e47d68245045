/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package httpclientmock provides a mock implementation of the HTTP client
// interface for testing.
package httpclientmock

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a mock implementation of HTTPClientInterface.
type MockHTTPClient struct {
	MockDo func(req *http.Request) (*http.Response, error)

	DoCalls []*http.Request
}

// Do executes the mock HTTP request.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.DoCalls = append(m.DoCalls, req)
	if m.MockDo != nil {
		return m.MockDo(req)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("[]")),
		Header:     http.Header{},
	}, nil
}
