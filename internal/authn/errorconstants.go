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

package authn

import "github.com/flowcanvas/quill/internal/system/error/serviceerror"

// Client errors for the authentication service
var (
	// ErrorMissingAuthorizationHeader is the error returned when the request carries no authorization header.
	ErrorMissingAuthorizationHeader = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHN-1001",
		Error:            "Missing authorization header",
		ErrorDescription: "The request does not contain an authorization header",
	}
	// ErrorInvalidAuthorizationHeader is the error returned when the authorization header is malformed.
	ErrorInvalidAuthorizationHeader = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHN-1002",
		Error:            "Invalid authorization header",
		ErrorDescription: "The authorization header is not a valid bearer token header",
	}
	// ErrorInvalidAPIKey is the error returned when the presented API key is not recognized.
	ErrorInvalidAPIKey = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHN-1003",
		Error:            "Invalid API key",
		ErrorDescription: "The presented API key does not match any configured key",
	}
)
