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
	"fmt"
	"time"

	"github.com/flowcanvas/quill/internal/system/config"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	"github.com/flowcanvas/quill/internal/system/log"
	"github.com/flowcanvas/quill/internal/system/utils"
)

const loggerComponentName = "ExecutionContextBuilder"

// defaultTimezone is assumed when the deployment configuration does not set one.
const defaultTimezone = "UTC"

// ContextBuilderInterface defines the service for constructing execution contexts.
type ContextBuilderInterface interface {
	BuildContext(userID string, currentParameters map[string]interface{}) (*Context, *serviceerror.ServiceError)
}

// contextBuilder is the default implementation backed by the deployment configuration.
type contextBuilder struct{}

// NewContextBuilder creates a new instance of ContextBuilderInterface.
func NewContextBuilder() ContextBuilderInterface {
	return &contextBuilder{}
}

// BuildContext constructs the execution context for a request on behalf of the given user.
func (cb *contextBuilder) BuildContext(
	userID string,
	currentParameters map[string]interface{},
) (*Context, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if userID == "" {
		logger.Error("Cannot build execution context without a user identity")
		return nil, serviceerror.CustomServiceError(ErrorWhileBuildingContext,
			"The request does not carry a resolved user identity")
	}

	runtime := config.GetQuillRuntime()
	editorConfig := runtime.Config.Editor
	serverConfig := runtime.Config.Server

	baseURL := editorConfig.BaseURL
	if baseURL == "" {
		scheme := "https"
		if serverConfig.HTTPOnly {
			scheme = "http"
		}
		baseURL = fmt.Sprintf("%s://%s:%d", scheme, serverConfig.Hostname, serverConfig.Port)
	}

	parsedBaseURL, err := utils.ParseURL(baseURL)
	if err != nil || !parsedBaseURL.IsAbs() || parsedBaseURL.Host == "" {
		logger.Error("Configured instance base URL is invalid", log.String("baseURL", baseURL))
		return nil, serviceerror.CustomServiceError(ErrorWhileBuildingContext,
			fmt.Sprintf("The configured instance base URL %q is invalid", baseURL))
	}

	webhookBaseURL := editorConfig.WebhookBaseURL
	if webhookBaseURL == "" {
		webhookBaseURL = baseURL
	}

	timezone := editorConfig.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		logger.Error("Configured timezone is invalid", log.String("timezone", timezone))
		return nil, serviceerror.CustomServiceError(ErrorWhileBuildingContext,
			fmt.Sprintf("The configured timezone %q is invalid", timezone))
	}

	return &Context{
		RequestID:         utils.GenerateUUID(),
		UserID:            userID,
		InstanceBaseURL:   baseURL,
		WebhookBaseURL:    webhookBaseURL,
		Timezone:          timezone,
		Variables:         utils.DeepCopyMapOfStrings(editorConfig.Variables),
		CurrentParameters: currentParameters,
	}, nil
}
