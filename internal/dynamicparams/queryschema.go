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
	"fmt"
	"net/url"

	"github.com/flowcanvas/quill/internal/nodes"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	sysutils "github.com/flowcanvas/quill/internal/system/utils"
)

// querySchemaField is one entry of an endpoint query schema. Fields are
// evaluated in schema order, so required checks fire in the order listed.
type querySchemaField struct {
	name     string
	required bool
	assign   func(params *requestParameters, rawValue string) error
}

// optionsQuerySchema decodes the options endpoint query. The mode selector
// fields are optional; the raw load options value stays undecoded here.
var optionsQuerySchema = []querySchemaField{
	{name: queryParamNodeTypeAndVersion, required: true, assign: assignNodeType},
	{name: queryParamCurrentNodeParameters, required: true, assign: assignCurrentParameters},
	{name: queryParamCredentials, assign: assignCredentials},
	{name: queryParamPath, assign: assignPath},
	{name: queryParamMethodName, assign: assignMethodName},
	{name: queryParamLoadOptions, assign: assignRawLoadOptions},
}

// resourceLocatorQuerySchema decodes the resource locator results endpoint
// query. The method name is listed first so its absence is reported before
// any JSON decoding of the other fields.
var resourceLocatorQuerySchema = []querySchemaField{
	{name: queryParamMethodName, required: true, assign: assignMethodName},
	{name: queryParamNodeTypeAndVersion, required: true, assign: assignNodeType},
	{name: queryParamCurrentNodeParameters, required: true, assign: assignCurrentParameters},
	{name: queryParamCredentials, assign: assignCredentials},
	{name: queryParamPath, assign: assignPath},
	{name: queryParamFilter, assign: assignFilter},
	{name: queryParamPaginationToken, assign: assignPaginationToken},
}

// resourceMapperQuerySchema decodes the resource mapper fields endpoint query.
var resourceMapperQuerySchema = []querySchemaField{
	{name: queryParamMethodName, required: true, assign: assignMethodName},
	{name: queryParamNodeTypeAndVersion, required: true, assign: assignNodeType},
	{name: queryParamCurrentNodeParameters, required: true, assign: assignCurrentParameters},
	{name: queryParamCredentials, assign: assignCredentials},
	{name: queryParamPath, assign: assignPath},
}

// decodeRequestParameters evaluates an endpoint schema against the raw query
// values. A required field that is absent or empty fails with a missing
// parameter error; a structured field that does not decode fails with an
// invalid value error naming the field.
func decodeRequestParameters(query url.Values, schema []querySchemaField) (*requestParameters, *serviceerror.ServiceError) {
	params := &requestParameters{}

	for _, field := range schema {
		rawValue := query.Get(field.name)
		if field.required && rawValue == "" {
			return nil, serviceerror.CustomServiceError(ErrorMissingRequiredParameter,
				fmt.Sprintf("Required query parameter %q is not provided", field.name))
		}
		if !query.Has(field.name) {
			continue
		}

		if err := field.assign(params, rawValue); err != nil {
			return nil, serviceerror.CustomServiceError(ErrorInvalidParameterValue,
				fmt.Sprintf("Query parameter %q does not hold valid JSON", field.name))
		}
	}

	return params, nil
}

func assignNodeType(params *requestParameters, rawValue string) error {
	nodeType, err := sysutils.DecodeJSONString[nodes.NodeTypeReference](rawValue)
	if err != nil {
		return err
	}
	params.nodeType = nodeType
	return nil
}

func assignCurrentParameters(params *requestParameters, rawValue string) error {
	currentParameters, err := sysutils.DecodeJSONString[map[string]interface{}](rawValue)
	if err != nil {
		return err
	}
	params.currentParameters = currentParameters
	return nil
}

func assignCredentials(params *requestParameters, rawValue string) error {
	credentials, err := sysutils.DecodeJSONString[nodes.CredentialSelection](rawValue)
	if err != nil {
		return err
	}
	params.credentials = credentials
	return nil
}

func assignPath(params *requestParameters, rawValue string) error {
	params.path = rawValue
	return nil
}

func assignMethodName(params *requestParameters, rawValue string) error {
	params.methodName = rawValue
	return nil
}

func assignFilter(params *requestParameters, rawValue string) error {
	params.filter = rawValue
	return nil
}

func assignPaginationToken(params *requestParameters, rawValue string) error {
	params.paginationToken = rawValue
	return nil
}

func assignRawLoadOptions(params *requestParameters, rawValue string) error {
	params.rawLoadOptions = rawValue
	return nil
}
