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

// Package authn provides API key based authentication for editor requests.
package authn

import (
	"crypto/subtle"
	"net/http"

	"github.com/flowcanvas/quill/internal/system/config"
	"github.com/flowcanvas/quill/internal/system/constants"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	"github.com/flowcanvas/quill/internal/system/log"
	"github.com/flowcanvas/quill/internal/system/utils"
)

const loggerComponentName = "AuthenticationService"

// AuthenticationServiceInterface defines the service for authenticating editor requests.
type AuthenticationServiceInterface interface {
	AuthenticateRequest(r *http.Request) (*AuthenticatedUser, *serviceerror.ServiceError)
}

// authenticationService is the default implementation backed by the API keys in the deployment configuration.
type authenticationService struct{}

// NewAuthenticationService creates a new instance of AuthenticationServiceInterface.
func NewAuthenticationService() AuthenticationServiceInterface {
	return &authenticationService{}
}

// AuthenticateRequest resolves the editor user from the bearer API key on the request.
func (as *authenticationService) AuthenticateRequest(
	r *http.Request,
) (*AuthenticatedUser, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if r.Header.Get(constants.AuthorizationHeaderName) == "" {
		return nil, &ErrorMissingAuthorizationHeader
	}

	apiKey, err := utils.ExtractBearerToken(r)
	if err != nil {
		logger.Debug("Failed to extract bearer token from the request", log.Error(err))
		return nil, &ErrorInvalidAuthorizationHeader
	}

	for _, configuredKey := range config.GetQuillRuntime().Config.Auth.APIKeys {
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey.Key)) == 1 {
			return &AuthenticatedUser{
				UserID:      configuredKey.UserID,
				DisplayName: configuredKey.DisplayName,
			}, nil
		}
	}

	logger.Debug("Presented API key did not match any configured key",
		log.String("apiKey", log.MaskString(apiKey)))
	return nil, &ErrorInvalidAPIKey
}
