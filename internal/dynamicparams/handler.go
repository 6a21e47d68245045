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

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flowcanvas/quill/internal/authn"
	"github.com/flowcanvas/quill/internal/execution"
	"github.com/flowcanvas/quill/internal/nodes"
	serverconst "github.com/flowcanvas/quill/internal/system/constants"
	"github.com/flowcanvas/quill/internal/system/error/apierror"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	"github.com/flowcanvas/quill/internal/system/log"
	sysutils "github.com/flowcanvas/quill/internal/system/utils"
)

// dynamicParamsHandler handles the dynamic node parameter requests. Each
// request is decoded, validated, enriched with an execution context, and
// dispatched to exactly one resolution strategy.
type dynamicParamsHandler struct {
	service        DynamicParametersServiceInterface
	contextBuilder execution.ContextBuilderInterface
}

// newDynamicParamsHandler creates a new instance of dynamicParamsHandler.
func newDynamicParamsHandler(
	service DynamicParametersServiceInterface, contextBuilder execution.ContextBuilderInterface,
) *dynamicParamsHandler {
	return &dynamicParamsHandler{
		service:        service,
		contextBuilder: contextBuilder,
	}
}

// HandleOptionsRequest handles the option list request. Method name mode
// takes precedence over load options mode; with neither selector the call
// succeeds trivially with an empty list.
func (h *dynamicParamsHandler) HandleOptionsRequest(
	w http.ResponseWriter, r *http.Request, user *authn.AuthenticatedUser,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DynamicParametersHandler"))

	params, svcErr := decodeRequestParameters(r.URL.Query(), optionsQuerySchema)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	// The load options value is decoded only when that mode is selected.
	var descriptor nodes.LoadOptionsDescriptor
	useLoadOptions := false
	if params.methodName == "" && params.rawLoadOptions != "" {
		decoded, err := sysutils.DecodeJSONString[nodes.LoadOptionsDescriptor](params.rawLoadOptions)
		if err != nil {
			writeServiceErrorResponse(w, serviceerror.CustomServiceError(ErrorInvalidParameterValue,
				fmt.Sprintf("Query parameter %q does not hold valid JSON", queryParamLoadOptions)), logger)
			return
		}
		descriptor = decoded
		useLoadOptions = true
	}

	execContext, svcErr := h.contextBuilder.BuildContext(user.UserID, params.currentParameters)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	var records []nodes.OptionRecord
	switch {
	case params.methodName != "":
		records, svcErr = h.service.GetOptionsViaMethodName(params.methodName, params.path,
			execContext, params.nodeType, params.currentParameters, params.credentials)
	case useLoadOptions:
		records, svcErr = h.service.GetOptionsViaLoadOptions(descriptor, params.path,
			execContext, params.nodeType, params.currentParameters, params.credentials)
	default:
		records = []nodes.OptionRecord{}
	}
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	if records == nil {
		records = []nodes.OptionRecord{}
	}
	writeJSONResponse(w, records, logger)
}

// HandleResourceLocatorResultsRequest handles the resource locator search
// request. An absent result yields an empty 200 response.
func (h *dynamicParamsHandler) HandleResourceLocatorResultsRequest(
	w http.ResponseWriter, r *http.Request, user *authn.AuthenticatedUser,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DynamicParametersHandler"))

	params, svcErr := decodeRequestParameters(r.URL.Query(), resourceLocatorQuerySchema)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	execContext, svcErr := h.contextBuilder.BuildContext(user.UserID, params.currentParameters)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	results, svcErr := h.service.GetResourceLocatorResults(params.methodName, params.path,
		execContext, params.nodeType, params.currentParameters, params.credentials,
		params.filter, params.paginationToken)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	if results == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSONResponse(w, results, logger)
}

// HandleResourceMapperFieldsRequest handles the resource mapper field schema
// request. An absent result yields an empty 200 response.
func (h *dynamicParamsHandler) HandleResourceMapperFieldsRequest(
	w http.ResponseWriter, r *http.Request, user *authn.AuthenticatedUser,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DynamicParametersHandler"))

	params, svcErr := decodeRequestParameters(r.URL.Query(), resourceMapperQuerySchema)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	execContext, svcErr := h.contextBuilder.BuildContext(user.UserID, params.currentParameters)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	fields, svcErr := h.service.GetResourceMapperFields(params.methodName, params.path,
		execContext, params.nodeType, params.currentParameters, params.credentials)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	if fields == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSONResponse(w, fields, logger)
}

// writeJSONResponse writes a 200 response with the JSON encoded payload.
func writeJSONResponse(w http.ResponseWriter, payload interface{}, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorNodeTypeNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
