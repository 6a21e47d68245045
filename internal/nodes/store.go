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
	"fmt"
	"strconv"

	"github.com/flowcanvas/quill/internal/system/database/provider"
)

// nodeStoreInterface defines the catalog database operations used by the node service.
type nodeStoreInterface interface {
	GetNodeTypeList() ([]NodeType, error)
	GetNodeTypesByName(name string) ([]NodeType, error)
}

// nodeStore is the default implementation of nodeStoreInterface.
type nodeStore struct {
	dbProvider provider.DBProviderInterface
}

func newNodeStore() nodeStoreInterface {
	return &nodeStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetNodeTypeList retrieves all node type rows from the catalog database.
func (s *nodeStore) GetNodeTypeList() ([]NodeType, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.CatalogDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetNodeTypeList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	nodeTypes := make([]NodeType, 0, len(results))
	for _, row := range results {
		nodeType, err := buildNodeTypeFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build node type from result row: %w", err)
		}
		nodeTypes = append(nodeTypes, *nodeType)
	}

	return nodeTypes, nil
}

// GetNodeTypesByName retrieves all versions of a node type from the catalog database.
func (s *nodeStore) GetNodeTypesByName(name string) ([]NodeType, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.CatalogDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetNodeTypesByName, name)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	nodeTypes := make([]NodeType, 0, len(results))
	for _, row := range results {
		nodeType, err := buildNodeTypeFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build node type from result row: %w", err)
		}
		nodeTypes = append(nodeTypes, *nodeType)
	}

	return nodeTypes, nil
}

// buildNodeTypeFromResultRow constructs a NodeType from a catalog result row.
// The DEFINITION document is parsed first and the scalar columns override it.
func buildNodeTypeFromResultRow(row map[string]interface{}) (*NodeType, error) {
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	version, err := parseVersionColumn(row["version"])
	if err != nil {
		return nil, err
	}

	var nodeType NodeType
	if definition := parseTextColumn(row["definition"]); definition != "" {
		if err := json.Unmarshal([]byte(definition), &nodeType); err != nil {
			return nil, fmt.Errorf("failed to parse definition document: %w", err)
		}
	}

	nodeType.Name = name
	nodeType.Version = version
	if displayName := parseTextColumn(row["display_name"]); displayName != "" {
		nodeType.DisplayName = displayName
	}
	if description := parseTextColumn(row["description"]); description != "" {
		nodeType.Description = description
	}

	return &nodeType, nil
}

func parseVersionColumn(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("failed to parse version as number")
	}
}

func parseTextColumn(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
