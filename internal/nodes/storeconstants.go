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

import "github.com/flowcanvas/quill/internal/system/database/model"

var (
	// queryGetNodeTypeList is the query to get all node type rows from the catalog.
	queryGetNodeTypeList = model.DBQuery{
		ID:    "NTQ-NODE_MGT-01",
		Query: "SELECT NAME, VERSION, DISPLAY_NAME, DESCRIPTION, DEFINITION FROM NODE_TYPE ORDER BY NAME, VERSION",
	}
	// queryGetNodeTypesByName is the query to get all versions of a node type by name.
	queryGetNodeTypesByName = model.DBQuery{
		ID:    "NTQ-NODE_MGT-02",
		Query: "SELECT NAME, VERSION, DISPLAY_NAME, DESCRIPTION, DEFINITION FROM NODE_TYPE WHERE NAME = $1 ORDER BY VERSION",
	}
)
