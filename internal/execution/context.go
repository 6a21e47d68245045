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

// Package execution provides the execution context under which node parameter
// resolution methods run.
package execution

// Context carries the per request execution environment handed to resolution methods.
type Context struct {
	// RequestID is the correlation identifier assigned to the request.
	RequestID string
	// UserID is the identifier of the editor user the request is resolved for.
	UserID string
	// InstanceBaseURL is the externally reachable base URL of this instance.
	InstanceBaseURL string
	// WebhookBaseURL is the base URL webhook style nodes advertise to external services.
	WebhookBaseURL string
	// Timezone is the IANA timezone name the resolution methods should assume.
	Timezone string
	// Variables holds the instance wide variables exposed to resolution methods.
	Variables map[string]string
	// CurrentParameters holds the node parameter values currently set in the editor.
	CurrentParameters map[string]interface{}
}
