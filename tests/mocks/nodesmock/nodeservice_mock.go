/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

// Package nodesmock provides mock implementations of the node service interfaces for testing.
package nodesmock

import (
	"github.com/flowcanvas/quill/internal/nodes"
)

// MockNodeService is a mock implementation of the NodeServiceInterface.
type MockNodeService struct {
	// MockInit defines the behavior for the Init method.
	MockInit func() error

	// MockGetNodeType defines the behavior for the GetNodeType method.
	MockGetNodeType func(name string, version float64) (*nodes.NodeType, error)

	// MockListNodeTypes defines the behavior for the ListNodeTypes method.
	MockListNodeTypes func() []nodes.NodeType

	// MockLookupOptionsMethod defines the behavior for the LookupOptionsMethod method.
	MockLookupOptionsMethod func(nodeName, methodName string) (nodes.OptionsMethodFunc, bool)

	// MockLookupSearchMethod defines the behavior for the LookupSearchMethod method.
	MockLookupSearchMethod func(nodeName, methodName string) (nodes.SearchMethodFunc, bool)

	// MockLookupMappingMethod defines the behavior for the LookupMappingMethod method.
	MockLookupMappingMethod func(nodeName, methodName string) (nodes.MappingMethodFunc, bool)

	// GetNodeTypeCalls tracks the arguments passed to GetNodeType.
	GetNodeTypeCalls []struct {
		Name    string
		Version float64
	}

	// RegisteredOptionsMethods tracks the method keys passed to RegisterOptionsMethod.
	RegisteredOptionsMethods []string

	// RegisteredSearchMethods tracks the method keys passed to RegisterSearchMethod.
	RegisteredSearchMethods []string

	// RegisteredMappingMethods tracks the method keys passed to RegisterMappingMethod.
	RegisteredMappingMethods []string
}

// Init mocks the Init method of the NodeServiceInterface.
func (m *MockNodeService) Init() error {
	if m.MockInit != nil {
		return m.MockInit()
	}
	return nil
}

// GetNodeType mocks the GetNodeType method of the NodeServiceInterface.
func (m *MockNodeService) GetNodeType(name string, version float64) (*nodes.NodeType, error) {
	m.GetNodeTypeCalls = append(m.GetNodeTypeCalls, struct {
		Name    string
		Version float64
	}{name, version})

	if m.MockGetNodeType != nil {
		return m.MockGetNodeType(name, version)
	}
	return nil, nodes.ErrNodeTypeNotFound
}

// ListNodeTypes mocks the ListNodeTypes method of the NodeServiceInterface.
func (m *MockNodeService) ListNodeTypes() []nodes.NodeType {
	if m.MockListNodeTypes != nil {
		return m.MockListNodeTypes()
	}
	return []nodes.NodeType{}
}

// RegisterOptionsMethod mocks the RegisterOptionsMethod method of the NodeServiceInterface.
func (m *MockNodeService) RegisterOptionsMethod(nodeName, methodName string, _ nodes.OptionsMethodFunc) {
	m.RegisteredOptionsMethods = append(m.RegisteredOptionsMethods, nodeName+"."+methodName)
}

// RegisterSearchMethod mocks the RegisterSearchMethod method of the NodeServiceInterface.
func (m *MockNodeService) RegisterSearchMethod(nodeName, methodName string, _ nodes.SearchMethodFunc) {
	m.RegisteredSearchMethods = append(m.RegisteredSearchMethods, nodeName+"."+methodName)
}

// RegisterMappingMethod mocks the RegisterMappingMethod method of the NodeServiceInterface.
func (m *MockNodeService) RegisterMappingMethod(nodeName, methodName string, _ nodes.MappingMethodFunc) {
	m.RegisteredMappingMethods = append(m.RegisteredMappingMethods, nodeName+"."+methodName)
}

// LookupOptionsMethod mocks the LookupOptionsMethod method of the NodeServiceInterface.
func (m *MockNodeService) LookupOptionsMethod(nodeName, methodName string) (nodes.OptionsMethodFunc, bool) {
	if m.MockLookupOptionsMethod != nil {
		return m.MockLookupOptionsMethod(nodeName, methodName)
	}
	return nil, false
}

// LookupSearchMethod mocks the LookupSearchMethod method of the NodeServiceInterface.
func (m *MockNodeService) LookupSearchMethod(nodeName, methodName string) (nodes.SearchMethodFunc, bool) {
	if m.MockLookupSearchMethod != nil {
		return m.MockLookupSearchMethod(nodeName, methodName)
	}
	return nil, false
}

// LookupMappingMethod mocks the LookupMappingMethod method of the NodeServiceInterface.
func (m *MockNodeService) LookupMappingMethod(nodeName, methodName string) (nodes.MappingMethodFunc, bool) {
	if m.MockLookupMappingMethod != nil {
		return m.MockLookupMappingMethod(nodeName, methodName)
	}
	return nil, false
}
