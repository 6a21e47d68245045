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

package nodes

import (
	"errors"

	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
)

// ErrNodeTypeNotFound is returned by the node service when the requested
// node type is not present in the catalog.
var ErrNodeTypeNotFound = errors.New("node type not found")

// Client errors for the node type API
var (
	// ErrorNodeTypeNotFound is the error returned when the requested node type does not exist.
	ErrorNodeTypeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NOD-1001",
		Error:            "Node type not found",
		ErrorDescription: "The requested node type is not present in the catalog",
	}
	// ErrorInvalidVersionValue is the error returned when the version query value is not a number.
	ErrorInvalidVersionValue = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NOD-1002",
		Error:            "Invalid version value",
		ErrorDescription: "The version query parameter must be a number",
	}
)

// Server errors for the node type API
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "NOD-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
