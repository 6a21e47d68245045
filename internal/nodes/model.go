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

import "github.com/flowcanvas/quill/internal/execution"

// NodeTypeReference identifies a node type and version as sent by the editor.
type NodeTypeReference struct {
	Name    string  `json:"name"`
	Version float64 `json:"version"`
}

// CredentialReference points at a stored credential by identifier and display name.
// The pair is passed through to resolution methods untouched.
type CredentialReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CredentialSelection maps credential type names to the credentials selected in the editor.
type CredentialSelection map[string]CredentialReference

// OptionRecord is a single selectable option presented in the editor.
type OptionRecord struct {
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Description string      `json:"description,omitempty"`
}

// ResourceLocatorResults is the result set returned by a search method,
// optionally carrying a token for fetching the next page.
type ResourceLocatorResults struct {
	Results         []OptionRecord `json:"results"`
	PaginationToken string         `json:"paginationToken,omitempty"`
}

// ResourceMapperField describes one mappable field of the target resource.
type ResourceMapperField struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Type             string `json:"type,omitempty"`
	Required         bool   `json:"required"`
	DefaultMatch     bool   `json:"defaultMatch"`
	Display          bool   `json:"display"`
	CanBeUsedToMatch bool   `json:"canBeUsedToMatch,omitempty"`
}

// ResourceMapperFields is the full field map returned by a mapping method.
type ResourceMapperFields struct {
	Fields []ResourceMapperField `json:"fields"`
}

// NodeType is one versioned entry in the node catalog. The same document is
// stored in the catalog database DEFINITION column and in definition files.
type NodeType struct {
	Name        string      `json:"name"`
	Version     float64     `json:"version"`
	DisplayName string      `json:"displayName,omitempty"`
	Description string      `json:"description,omitempty"`
	Group       []string    `json:"group,omitempty"`
	Methods     NodeMethods `json:"methods,omitempty"`
}

// NodeMethods declares the declarative method surface of a node type.
// Programmatic methods are registered with the node service at startup instead.
type NodeMethods struct {
	LoadOptions map[string]LoadOptionsDescriptor `json:"loadOptions,omitempty"`
}

// LoadOptionsDescriptor declares a declarative option lookup over HTTP.
type LoadOptionsDescriptor struct {
	Routing LoadOptionsRouting `json:"routing"`
}

// LoadOptionsRouting describes the outbound request and how its response maps to options.
type LoadOptionsRouting struct {
	Request LoadOptionsRequest `json:"request"`
	Output  LoadOptionsOutput  `json:"output"`
}

// LoadOptionsRequest describes the single outbound HTTP call of a descriptor.
type LoadOptionsRequest struct {
	Method      string            `json:"method,omitempty"`
	URL         string            `json:"url"`
	Headers     map[string]string `json:"headers,omitempty"`
	QueryString map[string]string `json:"qs,omitempty"`
}

// LoadOptionsOutput describes how option records are extracted from the response document.
type LoadOptionsOutput struct {
	RootProperty        string `json:"rootProperty,omitempty"`
	NameProperty        string `json:"nameProperty,omitempty"`
	ValueProperty       string `json:"valueProperty,omitempty"`
	DescriptionProperty string `json:"descriptionProperty,omitempty"`
	SortByName          bool   `json:"sortByName,omitempty"`
}

// LoadContext bundles everything a resolution method can draw on for one request.
type LoadContext struct {
	Execution         *execution.Context
	NodeType          *NodeType
	Path              string
	CurrentParameters map[string]interface{}
	Credentials       CredentialSelection
}

// CurrentParameter resolves a dot and bracket addressed path against the
// current parameter snapshot. The second return value reports whether the
// path resolved to a value.
func (lc *LoadContext) CurrentParameter(path string) (interface{}, bool) {
	return ResolveParameterPath(lc.CurrentParameters, path)
}

// OptionsMethodFunc resolves the selectable options for a node parameter.
type OptionsMethodFunc func(loadCtx *LoadContext) ([]OptionRecord, error)

// SearchMethodFunc resolves a filtered, pageable resource listing.
type SearchMethodFunc func(loadCtx *LoadContext, filter string, paginationToken string) (*ResourceLocatorResults, error)

// MappingMethodFunc resolves the mappable fields of the target resource.
type MappingMethodFunc func(loadCtx *LoadContext) (*ResourceMapperFields, error)
