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

package databasemock

import (
	"database/sql"
)

// MockTx is a mock implementation of TxInterface.
type MockTx struct {
	MockCommit   func() error
	MockRollback func() error
	MockExec     func(query string, args ...any) (sql.Result, error)

	CommitCalls   int
	RollbackCalls int
	ExecCalls     []struct {
		Query string
		Args  []any
	}
}

// Commit records the call and delegates to MockCommit when set.
func (m *MockTx) Commit() error {
	m.CommitCalls++
	if m.MockCommit != nil {
		return m.MockCommit()
	}
	return nil
}

// Rollback records the call and delegates to MockRollback when set.
func (m *MockTx) Rollback() error {
	m.RollbackCalls++
	if m.MockRollback != nil {
		return m.MockRollback()
	}
	return nil
}

// Exec records the query and delegates to MockExec when set.
func (m *MockTx) Exec(query string, args ...any) (sql.Result, error) {
	m.ExecCalls = append(m.ExecCalls, struct {
		Query string
		Args  []any
	}{query, args})
	if m.MockExec != nil {
		return m.MockExec(query, args...)
	}
	return &MockSQLResult{}, nil
}

// MockSQLResult is a mock implementation of sql.Result.
type MockSQLResult struct {
	MockLastInsertID func() (int64, error)
	MockRowsAffected func() (int64, error)
}

// LastInsertId delegates to MockLastInsertID when set.
func (m *MockSQLResult) LastInsertId() (int64, error) {
	if m.MockLastInsertID != nil {
		return m.MockLastInsertID()
	}
	return 0, nil
}

// RowsAffected delegates to MockRowsAffected when set.
func (m *MockSQLResult) RowsAffected() (int64, error) {
	if m.MockRowsAffected != nil {
		return m.MockRowsAffected()
	}
	return 0, nil
}
