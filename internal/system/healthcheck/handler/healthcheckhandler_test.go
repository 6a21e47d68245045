/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowcanvas/quill/internal/system/healthcheck/model"
	"github.com/flowcanvas/quill/internal/system/healthcheck/service"
)

// mockHealthCheckService is a function field mock of HealthCheckServiceInterface.
type mockHealthCheckService struct {
	MockCheckReadiness func() model.ServerStatus

	CheckReadinessCalls int
}

func (m *mockHealthCheckService) CheckReadiness() model.ServerStatus {
	m.CheckReadinessCalls++

	if m.MockCheckReadiness != nil {
		return m.MockCheckReadiness()
	}
	return model.ServerStatus{Status: model.StatusUp}
}

// mockHealthCheckProvider returns the mock service instead of the singleton.
type mockHealthCheckProvider struct {
	service service.HealthCheckServiceInterface
}

func (m *mockHealthCheckProvider) GetHealthCheckService() service.HealthCheckServiceInterface {
	return m.service
}

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	mockService *mockHealthCheckService
	handler     *HealthCheckHandler
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (suite *HealthCheckHandlerTestSuite) SetupTest() {
	suite.mockService = &mockHealthCheckService{}
	suite.handler = &HealthCheckHandler{
		Provider: &mockHealthCheckProvider{service: suite.mockService},
	}
}

func (suite *HealthCheckHandlerTestSuite) TestHandleLivenessRequest() {
	request := httptest.NewRequest(http.MethodGet, "/health/liveness", nil)
	recorder := httptest.NewRecorder()

	suite.handler.HandleLivenessRequest(recorder, request)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Zero(suite.T(), suite.mockService.CheckReadinessCalls)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequestUp() {
	suite.mockService.MockCheckReadiness = func() model.ServerStatus {
		return model.ServerStatus{
			Status: model.StatusUp,
			ServiceStatus: []model.ServiceStatus{
				{ServiceName: "CatalogDB", Status: model.StatusUp},
			},
		}
	}

	request := httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
	recorder := httptest.NewRecorder()

	suite.handler.HandleReadinessRequest(recorder, request)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), 1, suite.mockService.CheckReadinessCalls)

	var serverStatus model.ServerStatus
	err := json.NewDecoder(recorder.Body).Decode(&serverStatus)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.StatusUp, serverStatus.Status)
	assert.Len(suite.T(), serverStatus.ServiceStatus, 1)
	assert.Equal(suite.T(), "CatalogDB", serverStatus.ServiceStatus[0].ServiceName)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequestDown() {
	suite.mockService.MockCheckReadiness = func() model.ServerStatus {
		return model.ServerStatus{
			Status: model.StatusDown,
			ServiceStatus: []model.ServiceStatus{
				{ServiceName: "CatalogDB", Status: model.StatusDown},
			},
		}
	}

	request := httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
	recorder := httptest.NewRecorder()

	suite.handler.HandleReadinessRequest(recorder, request)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, recorder.Code)

	var serverStatus model.ServerStatus
	err := json.NewDecoder(recorder.Body).Decode(&serverStatus)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.StatusDown, serverStatus.Status)
}
