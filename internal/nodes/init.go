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
	"net/http"

	"github.com/flowcanvas/quill/internal/authn"
	"github.com/flowcanvas/quill/internal/system/middleware"
)

// Initialize initializes the node service and registers the node type routes.
func Initialize(mux *http.ServeMux, authNService authn.AuthenticationServiceInterface) NodeServiceInterface {
	nodeService := GetNodeService()
	nodeHandler := newNodeHandler(nodeService)
	registerRoutes(mux, nodeHandler, authNService)
	return nodeService
}

// registerRoutes registers the routes for node type catalog operations.
func registerRoutes(mux *http.ServeMux, nodeHandler *nodeHandler, authNService authn.AuthenticationServiceInterface) {
	corsOptions := middleware.CORSOptions{
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("GET /node-types",
		middleware.WithAuthentication(authNService, nodeHandler.HandleNodeTypeListRequest), corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /node-types",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))

	mux.HandleFunc(middleware.WithCORS("GET /node-types/{name}",
		middleware.WithAuthentication(authNService, nodeHandler.HandleNodeTypeGetRequest), corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /node-types/{name}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))
}
