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

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/flowcanvas/quill/internal/authn"
	"github.com/flowcanvas/quill/internal/system/constants"
	"github.com/flowcanvas/quill/internal/system/error/apierror"
	"github.com/flowcanvas/quill/internal/system/log"
)

// AuthenticatedHandlerFunc is an HTTP handler that additionally receives the authenticated user.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *authn.AuthenticatedUser)

// WithAuthentication wraps an HTTP handler so the request is authenticated before it is served.
// Requests that fail authentication are rejected with a 401 response.
func WithAuthentication(
	authNService authn.AuthenticationServiceInterface,
	handler AuthenticatedHandlerFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, svcErr := authNService.AuthenticateRequest(r)
		if svcErr != nil {
			writeUnauthorizedResponse(w, svcErr.Code, svcErr.Error, svcErr.ErrorDescription)
			return
		}
		handler(w, r, user)
	}
}

func writeUnauthorizedResponse(w http.ResponseWriter, code, message, description string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthenticationMiddleware"))

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(http.StatusUnauthorized)

	errResp := apierror.ErrorResponse{
		Code:        code,
		Message:     message,
		Description: description,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
