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

// Package databasemock provides mock implementations of the database interfaces for testing.
package databasemock

import (
	"github.com/flowcanvas/quill/internal/system/database/model"
)

// MockDBClient is a mock implementation of DBClientInterface.
type MockDBClient struct {
	MockQuery   func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	MockExecute func(query model.DBQuery, args ...interface{}) (int64, error)
	MockBeginTx func() (model.TxInterface, error)
	MockClose   func() error

	QueryCalls []struct {
		Query model.DBQuery
		Args  []interface{}
	}
	ExecuteCalls []struct {
		Query model.DBQuery
		Args  []interface{}
	}
	BeginTxCalls int
	CloseCalls   int
}

// Query records the query and delegates to MockQuery when set.
func (m *MockDBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	m.QueryCalls = append(m.QueryCalls, struct {
		Query model.DBQuery
		Args  []interface{}
	}{query, args})
	if m.MockQuery != nil {
		return m.MockQuery(query, args...)
	}
	return []map[string]interface{}{}, nil
}

// Execute records the query and delegates to MockExecute when set.
func (m *MockDBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, struct {
		Query model.DBQuery
		Args  []interface{}
	}{query, args})
	if m.MockExecute != nil {
		return m.MockExecute(query, args...)
	}
	return 0, nil
}

// BeginTx records the call and delegates to MockBeginTx when set.
func (m *MockDBClient) BeginTx() (model.TxInterface, error) {
	m.BeginTxCalls++
	if m.MockBeginTx != nil {
		return m.MockBeginTx()
	}
	return &MockTx{}, nil
}

// Close records the call and delegates to MockClose when set.
func (m *MockDBClient) Close() error {
	m.CloseCalls++
	if m.MockClose != nil {
		return m.MockClose()
	}
	return nil
}
