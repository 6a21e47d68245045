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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/flowcanvas/quill/internal/authn"
	serverconst "github.com/flowcanvas/quill/internal/system/constants"
	"github.com/flowcanvas/quill/internal/system/error/apierror"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	"github.com/flowcanvas/quill/internal/system/log"
	sysutils "github.com/flowcanvas/quill/internal/system/utils"
)

// nodeTypeSummaryResponse is one item of the node type listing response.
type nodeTypeSummaryResponse struct {
	Name        string   `json:"name"`
	Version     float64  `json:"version"`
	DisplayName string   `json:"displayName,omitempty"`
	Description string   `json:"description,omitempty"`
	Group       []string `json:"group,omitempty"`
}

// nodeHandler handles the node type catalog requests.
type nodeHandler struct {
	nodeService NodeServiceInterface
}

// newNodeHandler creates a new instance of nodeHandler.
func newNodeHandler(nodeService NodeServiceInterface) *nodeHandler {
	return &nodeHandler{
		nodeService: nodeService,
	}
}

// HandleNodeTypeListRequest handles the node type listing request.
func (nh *nodeHandler) HandleNodeTypeListRequest(
	w http.ResponseWriter, r *http.Request, _ *authn.AuthenticatedUser,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "NodeHandler"))

	nodeTypes := nh.nodeService.ListNodeTypes()

	listResponse := make([]nodeTypeSummaryResponse, 0, len(nodeTypes))
	for _, nodeType := range nodeTypes {
		listResponse = append(listResponse, nodeTypeSummaryResponse{
			Name:        nodeType.Name,
			Version:     nodeType.Version,
			DisplayName: nodeType.DisplayName,
			Description: nodeType.Description,
			Group:       nodeType.Group,
		})
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(listResponse); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleNodeTypeGetRequest handles the single node type request.
func (nh *nodeHandler) HandleNodeTypeGetRequest(
	w http.ResponseWriter, r *http.Request, _ *authn.AuthenticatedUser,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "NodeHandler"))

	name := sysutils.SanitizeString(r.PathValue("name"))
	if name == "" {
		writeServiceErrorResponse(w, &ErrorNodeTypeNotFound, logger)
		return
	}

	var version float64
	if rawVersion := r.URL.Query().Get("version"); rawVersion != "" {
		parsed, err := strconv.ParseFloat(rawVersion, 64)
		if err != nil {
			writeServiceErrorResponse(w, &ErrorInvalidVersionValue, logger)
			return
		}
		version = parsed
	}

	nodeType, err := nh.nodeService.GetNodeType(name, version)
	if err != nil {
		if errors.Is(err, ErrNodeTypeNotFound) {
			writeServiceErrorResponse(w, &ErrorNodeTypeNotFound, logger)
			return
		}
		logger.Error("Failed to retrieve node type", log.String(log.LoggerKeyNodeType, name), log.Error(err))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(nodeType); encodeErr != nil {
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
