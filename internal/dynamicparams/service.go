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

// Package dynamicparams implements the dynamic node parameter query API: the
// validation and dispatch layer that lets the editor resolve option lists,
// resource locator results, and resource mapper fields at edit time.
package dynamicparams

import (
	"errors"
	"fmt"

	"github.com/flowcanvas/quill/internal/execution"
	"github.com/flowcanvas/quill/internal/nodes"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	httpservice "github.com/flowcanvas/quill/internal/system/http"
	"github.com/flowcanvas/quill/internal/system/log"
)

// DynamicParametersServiceInterface defines the resolution strategies behind
// the dynamic node parameter endpoints. Each call resolves against exactly
// one strategy and either fully succeeds or fully fails; an empty or absent
// result is a valid success.
type DynamicParametersServiceInterface interface {
	GetOptionsViaMethodName(methodName, path string, execContext *execution.Context,
		nodeTypeRef nodes.NodeTypeReference, currentParameters map[string]interface{},
		credentials nodes.CredentialSelection) ([]nodes.OptionRecord, *serviceerror.ServiceError)
	GetOptionsViaLoadOptions(descriptor nodes.LoadOptionsDescriptor, path string,
		execContext *execution.Context, nodeTypeRef nodes.NodeTypeReference,
		currentParameters map[string]interface{}, credentials nodes.CredentialSelection) (
		[]nodes.OptionRecord, *serviceerror.ServiceError)
	GetResourceLocatorResults(methodName, path string, execContext *execution.Context,
		nodeTypeRef nodes.NodeTypeReference, currentParameters map[string]interface{},
		credentials nodes.CredentialSelection, filter, paginationToken string) (
		*nodes.ResourceLocatorResults, *serviceerror.ServiceError)
	GetResourceMapperFields(methodName, path string, execContext *execution.Context,
		nodeTypeRef nodes.NodeTypeReference, currentParameters map[string]interface{},
		credentials nodes.CredentialSelection) (*nodes.ResourceMapperFields, *serviceerror.ServiceError)
}

// dynamicParametersService is the default implementation backed by the node
// registry and the declarative load options resolver.
type dynamicParametersService struct {
	nodeService nodes.NodeServiceInterface
	resolver    *declarativeResolver
}

// NewDynamicParametersService creates a dynamic parameters service over the
// given node registry and outbound HTTP client.
func NewDynamicParametersService(
	nodeService nodes.NodeServiceInterface, httpClient httpservice.HTTPClientInterface,
) DynamicParametersServiceInterface {
	return &dynamicParametersService{
		nodeService: nodeService,
		resolver:    newDeclarativeResolver(httpClient),
	}
}

// GetOptionsViaMethodName resolves option records through the method
// registered under the given name, falling back to a declarative load options
// descriptor of the same name from the node definition.
func (s *dynamicParametersService) GetOptionsViaMethodName(
	methodName, path string,
	execContext *execution.Context,
	nodeTypeRef nodes.NodeTypeReference,
	currentParameters map[string]interface{},
	credentials nodes.CredentialSelection,
) ([]nodes.OptionRecord, *serviceerror.ServiceError) {
	nodeType, svcErr := s.getNodeType(nodeTypeRef)
	if svcErr != nil {
		return nil, svcErr
	}
	loadCtx := newLoadContext(execContext, nodeType, path, currentParameters, credentials)

	if fn, ok := s.nodeService.LookupOptionsMethod(nodeTypeRef.Name, methodName); ok {
		records, err := fn(loadCtx)
		if err != nil {
			return nil, resolutionError(err)
		}
		return records, nil
	}

	if descriptor, ok := nodeType.Methods.LoadOptions[methodName]; ok {
		return s.resolver.resolveOptions(descriptor, loadCtx)
	}

	return nil, methodNotFoundError(nodeTypeRef.Name, methodName)
}

// GetOptionsViaLoadOptions resolves option records by executing the given
// load options descriptor.
func (s *dynamicParametersService) GetOptionsViaLoadOptions(
	descriptor nodes.LoadOptionsDescriptor,
	path string,
	execContext *execution.Context,
	nodeTypeRef nodes.NodeTypeReference,
	currentParameters map[string]interface{},
	credentials nodes.CredentialSelection,
) ([]nodes.OptionRecord, *serviceerror.ServiceError) {
	nodeType, svcErr := s.getNodeType(nodeTypeRef)
	if svcErr != nil {
		return nil, svcErr
	}

	return s.resolver.resolveOptions(descriptor,
		newLoadContext(execContext, nodeType, path, currentParameters, credentials))
}

// GetResourceLocatorResults resolves a filtered, pageable resource listing
// through the search method registered under the given name.
func (s *dynamicParametersService) GetResourceLocatorResults(
	methodName, path string,
	execContext *execution.Context,
	nodeTypeRef nodes.NodeTypeReference,
	currentParameters map[string]interface{},
	credentials nodes.CredentialSelection,
	filter, paginationToken string,
) (*nodes.ResourceLocatorResults, *serviceerror.ServiceError) {
	nodeType, svcErr := s.getNodeType(nodeTypeRef)
	if svcErr != nil {
		return nil, svcErr
	}

	fn, ok := s.nodeService.LookupSearchMethod(nodeTypeRef.Name, methodName)
	if !ok {
		return nil, methodNotFoundError(nodeTypeRef.Name, methodName)
	}

	results, err := fn(newLoadContext(execContext, nodeType, path, currentParameters, credentials),
		filter, paginationToken)
	if err != nil {
		return nil, resolutionError(err)
	}
	return results, nil
}

// GetResourceMapperFields resolves the mappable fields of the target resource
// through the mapping method registered under the given name.
func (s *dynamicParametersService) GetResourceMapperFields(
	methodName, path string,
	execContext *execution.Context,
	nodeTypeRef nodes.NodeTypeReference,
	currentParameters map[string]interface{},
	credentials nodes.CredentialSelection,
) (*nodes.ResourceMapperFields, *serviceerror.ServiceError) {
	nodeType, svcErr := s.getNodeType(nodeTypeRef)
	if svcErr != nil {
		return nil, svcErr
	}

	fn, ok := s.nodeService.LookupMappingMethod(nodeTypeRef.Name, methodName)
	if !ok {
		return nil, methodNotFoundError(nodeTypeRef.Name, methodName)
	}

	fields, err := fn(newLoadContext(execContext, nodeType, path, currentParameters, credentials))
	if err != nil {
		return nil, resolutionError(err)
	}
	return fields, nil
}

func (s *dynamicParametersService) getNodeType(
	nodeTypeRef nodes.NodeTypeReference,
) (*nodes.NodeType, *serviceerror.ServiceError) {
	nodeType, err := s.nodeService.GetNodeType(nodeTypeRef.Name, nodeTypeRef.Version)
	if err != nil {
		if errors.Is(err, nodes.ErrNodeTypeNotFound) {
			return nil, serviceerror.CustomServiceError(ErrorNodeTypeNotFound,
				fmt.Sprintf("Node type %q is not present in the catalog", nodeTypeRef.Name))
		}
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to retrieve node type",
			log.String(log.LoggerKeyNodeType, nodeTypeRef.Name), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return nodeType, nil
}

func newLoadContext(
	execContext *execution.Context,
	nodeType *nodes.NodeType,
	path string,
	currentParameters map[string]interface{},
	credentials nodes.CredentialSelection,
) *nodes.LoadContext {
	return &nodes.LoadContext{
		Execution:         execContext,
		NodeType:          nodeType,
		Path:              path,
		CurrentParameters: currentParameters,
		Credentials:       credentials,
	}
}

// resolutionError maps a failed resolution call onto the wire error contract.
// The original message is preserved as the error description.
func resolutionError(err error) *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(ErrorWhileResolvingParameters, err.Error())
}

func methodNotFoundError(nodeName, methodName string) *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(ErrorResolutionMethodNotFound,
		fmt.Sprintf("Node type %q does not declare a resolution method named %q", nodeName, methodName))
}
