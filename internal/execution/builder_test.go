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

package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowcanvas/quill/internal/system/config"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
)

type ContextBuilderTestSuite struct {
	suite.Suite
	builder ContextBuilderInterface
}

func TestContextBuilderSuite(t *testing.T) {
	suite.Run(t, new(ContextBuilderTestSuite))
}

func (suite *ContextBuilderTestSuite) SetupTest() {
	config.ResetQuillRuntime()
	suite.builder = NewContextBuilder()
}

func (suite *ContextBuilderTestSuite) TearDownTest() {
	config.ResetQuillRuntime()
}

func (suite *ContextBuilderTestSuite) initRuntime(cfg *config.Config) {
	err := config.InitializeQuillRuntime("/opt/quill", cfg)
	assert.NoError(suite.T(), err)
}

func (suite *ContextBuilderTestSuite) TestBuildContextWithConfiguredEditorSettings() {
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{
			BaseURL:        "https://quill.example.com",
			WebhookBaseURL: "https://hooks.example.com",
			Timezone:       "Europe/Berlin",
			Variables:      map[string]string{"env": "production"},
		},
	})

	currentParameters := map[string]interface{}{"resource": "item"}
	execContext, svcErr := suite.builder.BuildContext("user-001", currentParameters)

	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), execContext)
	assert.Equal(suite.T(), "user-001", execContext.UserID)
	assert.Equal(suite.T(), "https://quill.example.com", execContext.InstanceBaseURL)
	assert.Equal(suite.T(), "https://hooks.example.com", execContext.WebhookBaseURL)
	assert.Equal(suite.T(), "Europe/Berlin", execContext.Timezone)
	assert.Equal(suite.T(), map[string]string{"env": "production"}, execContext.Variables)
	assert.Equal(suite.T(), currentParameters, execContext.CurrentParameters)
	assert.NotEmpty(suite.T(), execContext.RequestID)
}

func (suite *ContextBuilderTestSuite) TestBuildContextDerivesBaseURLFromServerConfig() {
	suite.initRuntime(&config.Config{
		Server: config.ServerConfig{
			Hostname: "localhost",
			Port:     8090,
			HTTPOnly: true,
		},
	})

	execContext, svcErr := suite.builder.BuildContext("user-001", nil)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "http://localhost:8090", execContext.InstanceBaseURL)
	assert.Equal(suite.T(), "http://localhost:8090", execContext.WebhookBaseURL)
	assert.Equal(suite.T(), "UTC", execContext.Timezone)
}

func (suite *ContextBuilderTestSuite) TestBuildContextDerivesHTTPSBaseURL() {
	suite.initRuntime(&config.Config{
		Server: config.ServerConfig{
			Hostname: "quill.internal",
			Port:     8443,
		},
	})

	execContext, svcErr := suite.builder.BuildContext("user-001", nil)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "https://quill.internal:8443", execContext.InstanceBaseURL)
}

func (suite *ContextBuilderTestSuite) TestBuildContextGeneratesUniqueRequestIDs() {
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{BaseURL: "https://quill.example.com"},
	})

	first, svcErr := suite.builder.BuildContext("user-001", nil)
	assert.Nil(suite.T(), svcErr)
	second, svcErr := suite.builder.BuildContext("user-001", nil)
	assert.Nil(suite.T(), svcErr)

	assert.NotEqual(suite.T(), first.RequestID, second.RequestID)
}

func (suite *ContextBuilderTestSuite) TestBuildContextCopiesVariables() {
	configuredVariables := map[string]string{"env": "production"}
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{
			BaseURL:   "https://quill.example.com",
			Variables: configuredVariables,
		},
	})

	execContext, svcErr := suite.builder.BuildContext("user-001", nil)
	assert.Nil(suite.T(), svcErr)

	execContext.Variables["env"] = "staging"
	assert.Equal(suite.T(), "production", configuredVariables["env"])
}

func (suite *ContextBuilderTestSuite) TestBuildContextEmptyUserID() {
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{BaseURL: "https://quill.example.com"},
	})

	execContext, svcErr := suite.builder.BuildContext("", nil)

	assert.Nil(suite.T(), execContext)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorWhileBuildingContext.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
}

func (suite *ContextBuilderTestSuite) TestBuildContextInvalidBaseURL() {
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{BaseURL: "not a url"},
	})

	execContext, svcErr := suite.builder.BuildContext("user-001", nil)

	assert.Nil(suite.T(), execContext)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorWhileBuildingContext.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "base URL")
}

func (suite *ContextBuilderTestSuite) TestBuildContextInvalidTimezone() {
	suite.initRuntime(&config.Config{
		Editor: config.EditorConfig{
			BaseURL:  "https://quill.example.com",
			Timezone: "Mars/Olympus_Mons",
		},
	})

	execContext, svcErr := suite.builder.BuildContext("user-001", nil)

	assert.Nil(suite.T(), execContext)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorWhileBuildingContext.Code, svcErr.Code)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "timezone")
}
