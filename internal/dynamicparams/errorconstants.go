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

package dynamicparams

import "github.com/flowcanvas/quill/internal/system/error/serviceerror"

// Client errors for the dynamic node parameter API
var (
	// ErrorMissingRequiredParameter is the error returned when a required query parameter is absent.
	ErrorMissingRequiredParameter = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DNP-1001",
		Error:            "Missing required query parameter",
		ErrorDescription: "A required query parameter is not provided",
	}
	// ErrorInvalidParameterValue is the error returned when a structured query parameter holds malformed JSON.
	ErrorInvalidParameterValue = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DNP-1002",
		Error:            "Invalid query parameter value",
		ErrorDescription: "A query parameter does not hold a valid value",
	}
	// ErrorNodeTypeNotFound is the error returned when the referenced node type is not in the catalog.
	ErrorNodeTypeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DNP-1004",
		Error:            "Node type not found",
		ErrorDescription: "The referenced node type is not present in the catalog",
	}
)

// Server errors for the dynamic node parameter API
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DNP-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorInvalidLoadOptionsDescriptor is the error returned when a load options descriptor cannot be executed.
	ErrorInvalidLoadOptionsDescriptor = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DNP-5001",
		Error:            "Invalid load options descriptor",
		ErrorDescription: "The load options descriptor cannot be executed",
	}
	// ErrorResolutionMethodNotFound is the error returned when the node type declares no matching method.
	ErrorResolutionMethodNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DNP-5002",
		Error:            "Resolution method not found",
		ErrorDescription: "The node type does not declare the requested resolution method",
	}
	// ErrorWhileResolvingParameters is the error wrapping a failed resolution call.
	ErrorWhileResolvingParameters = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DNP-5003",
		Error:            "Error while resolving dynamic parameters",
		ErrorDescription: "The resolution call failed",
	}
)
