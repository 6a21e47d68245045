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

import "github.com/flowcanvas/quill/internal/system/error/serviceerror"

// Server errors for the execution context builder
var (
	// ErrorWhileBuildingContext is the error returned when the execution context cannot be constructed.
	ErrorWhileBuildingContext = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EXC-5001",
		Error:            "Error while building execution context",
		ErrorDescription: "The execution context for the request could not be constructed",
	}
)
