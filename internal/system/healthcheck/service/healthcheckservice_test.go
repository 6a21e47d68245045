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

package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowcanvas/quill/internal/system/config"
	"github.com/flowcanvas/quill/internal/system/database/client"
	dbmodel "github.com/flowcanvas/quill/internal/system/database/model"
	"github.com/flowcanvas/quill/internal/system/healthcheck/model"
	"github.com/flowcanvas/quill/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	service        HealthCheckServiceInterface
	mockDBProvider *databasemock.MockDBProvider
	mockCatalogDB  *databasemock.MockDBClient
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	config.ResetQuillRuntime()

	instance = nil
	once = sync.Once{}
	suite.service = GetHealthCheckService()

	suite.mockCatalogDB = &databasemock.MockDBClient{}
	suite.mockDBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.mockCatalogDB, nil
		},
	}
	suite.service.(*HealthCheckService).DBProvider = suite.mockDBProvider
}

func (suite *HealthCheckServiceTestSuite) TearDownTest() {
	config.ResetQuillRuntime()
}

func (suite *HealthCheckServiceTestSuite) initRuntime(catalogType string) {
	cfg := &config.Config{}
	cfg.Database.Catalog.Type = catalogType
	err := config.InitializeQuillRuntime("/tmp/quill-home", cfg)
	assert.NoError(suite.T(), err)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessCatalogUp() {
	suite.initRuntime("postgres")
	suite.mockCatalogDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return []map[string]interface{}{{"name": "slack"}}, nil
	}

	serverStatus := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, serverStatus.Status)
	assert.Equal(suite.T(), []model.ServiceStatus{
		{ServiceName: "CatalogDB", Status: model.StatusUp},
	}, serverStatus.ServiceStatus)
	assert.Equal(suite.T(), []string{"catalog"}, suite.mockDBProvider.GetDBClientCalls)
	assert.Len(suite.T(), suite.mockCatalogDB.QueryCalls, 1)
	assert.Equal(suite.T(), "HLC-00001", suite.mockCatalogDB.QueryCalls[0].Query.GetID())
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessCatalogQueryFails() {
	suite.initRuntime("postgres")
	suite.mockCatalogDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return nil, errors.New("connection reset")
	}

	serverStatus := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, serverStatus.Status)
	assert.Equal(suite.T(), []model.ServiceStatus{
		{ServiceName: "CatalogDB", Status: model.StatusDown},
	}, serverStatus.ServiceStatus)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessClientUnavailable() {
	suite.initRuntime("postgres")
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("failed to connect to database")
	}

	serverStatus := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, serverStatus.Status)
	assert.Empty(suite.T(), suite.mockCatalogDB.QueryCalls)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessWithoutCatalogDatabase() {
	suite.initRuntime("")

	serverStatus := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, serverStatus.Status)
	assert.Equal(suite.T(), []model.ServiceStatus{
		{ServiceName: "CatalogDB", Status: model.StatusUp},
	}, serverStatus.ServiceStatus)
	assert.Empty(suite.T(), suite.mockDBProvider.GetDBClientCalls)
}

func (suite *HealthCheckServiceTestSuite) TestGetHealthCheckServiceSingleton() {
	first := GetHealthCheckService()
	second := GetHealthCheckService()
	assert.Same(suite.T(), first, second)
}
