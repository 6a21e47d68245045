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
	"net/http"

	"github.com/flowcanvas/quill/internal/authn"
	"github.com/flowcanvas/quill/internal/execution"
	"github.com/flowcanvas/quill/internal/nodes"
	httpservice "github.com/flowcanvas/quill/internal/system/http"
	"github.com/flowcanvas/quill/internal/system/middleware"
)

// Initialize initializes the dynamic parameters service and registers the
// dynamic node parameter routes.
func Initialize(
	mux *http.ServeMux, authNService authn.AuthenticationServiceInterface, nodeService nodes.NodeServiceInterface,
) DynamicParametersServiceInterface {
	dynamicParamsService := NewDynamicParametersService(nodeService, httpservice.GetHTTPClient())
	dynamicParamsHandler := newDynamicParamsHandler(dynamicParamsService, execution.NewContextBuilder())
	registerRoutes(mux, dynamicParamsHandler, authNService)
	return dynamicParamsService
}

// registerRoutes registers the routes for dynamic node parameter resolution.
func registerRoutes(
	mux *http.ServeMux, dynamicParamsHandler *dynamicParamsHandler, authNService authn.AuthenticationServiceInterface,
) {
	corsOptions := middleware.CORSOptions{
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("GET /dynamic-node-parameters/options",
		middleware.WithAuthentication(authNService, dynamicParamsHandler.HandleOptionsRequest), corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dynamic-node-parameters/options",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))

	mux.HandleFunc(middleware.WithCORS("GET /dynamic-node-parameters/resource-locator-results",
		middleware.WithAuthentication(authNService, dynamicParamsHandler.HandleResourceLocatorResultsRequest),
		corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dynamic-node-parameters/resource-locator-results",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))

	mux.HandleFunc(middleware.WithCORS("GET /dynamic-node-parameters/resource-mapper-fields",
		middleware.WithAuthentication(authNService, dynamicParamsHandler.HandleResourceMapperFieldsRequest),
		corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dynamic-node-parameters/resource-mapper-fields",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))
}
