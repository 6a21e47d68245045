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
	"github.com/flowcanvas/quill/internal/nodes"
)

// requestParameters is the decoded form of one dynamic node parameter query.
// The raw load options value is kept undecoded; the dispatcher decodes it only
// when the load options mode is actually selected.
type requestParameters struct {
	nodeType          nodes.NodeTypeReference
	currentParameters map[string]interface{}
	credentials       nodes.CredentialSelection
	path              string
	methodName        string
	filter            string
	paginationToken   string
	rawLoadOptions    string
}
