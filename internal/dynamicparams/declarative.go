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
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/flowcanvas/quill/internal/nodes"
	serverconst "github.com/flowcanvas/quill/internal/system/constants"
	"github.com/flowcanvas/quill/internal/system/error/serviceerror"
	httpservice "github.com/flowcanvas/quill/internal/system/http"
	sysutils "github.com/flowcanvas/quill/internal/system/utils"
)

// Fallback item properties used when the descriptor output does not name them.
const (
	defaultOptionNameProperty  = "name"
	defaultOptionValueProperty = "value"
)

// declarativeResolver executes load options descriptors. A descriptor
// declares exactly one outbound HTTP call and an output mapping that turns
// the JSON response document into option records.
type declarativeResolver struct {
	httpClient httpservice.HTTPClientInterface
}

func newDeclarativeResolver(httpClient httpservice.HTTPClientInterface) *declarativeResolver {
	return &declarativeResolver{
		httpClient: httpClient,
	}
}

// resolveOptions executes the descriptor request and maps the response onto
// option records.
func (r *declarativeResolver) resolveOptions(
	descriptor nodes.LoadOptionsDescriptor, loadCtx *nodes.LoadContext,
) ([]nodes.OptionRecord, *serviceerror.ServiceError) {
	request, svcErr := r.buildRequest(descriptor.Routing.Request, loadCtx)
	if svcErr != nil {
		return nil, svcErr
	}

	response, err := r.httpClient.Do(request)
	if err != nil {
		return nil, resolutionError(err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
			fmt.Sprintf("load options request returned status %d", response.StatusCode))
	}

	var document interface{}
	if err := json.NewDecoder(response.Body).Decode(&document); err != nil {
		return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
			"load options response is not valid JSON")
	}

	return mapResponseToOptions(document, descriptor.Routing.Output)
}

// buildRequest constructs the single outbound request a descriptor declares.
// The request URL must be absolute; the request correlation ID is forwarded
// when the execution context carries one.
func (r *declarativeResolver) buildRequest(
	requestSpec nodes.LoadOptionsRequest, loadCtx *nodes.LoadContext,
) (*http.Request, *serviceerror.ServiceError) {
	parsedURL, err := sysutils.ParseURL(requestSpec.URL)
	if err != nil || !parsedURL.IsAbs() || parsedURL.Host == "" {
		return nil, serviceerror.CustomServiceError(ErrorInvalidLoadOptionsDescriptor,
			"The load options descriptor does not declare an absolute request URL")
	}

	method := strings.ToUpper(requestSpec.Method)
	if method == "" {
		method = http.MethodGet
	}

	request, err := http.NewRequest(method, parsedURL.String(), nil)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInvalidLoadOptionsDescriptor, err.Error())
	}

	headers := sysutils.MergeStringMaps(map[string]string{
		serverconst.AcceptHeaderName: serverconst.ContentTypeJSON,
	}, requestSpec.Headers)
	for name, value := range headers {
		request.Header.Set(name, value)
	}
	if loadCtx.Execution != nil && loadCtx.Execution.RequestID != "" {
		request.Header.Set(serverconst.RequestIDHeaderName, loadCtx.Execution.RequestID)
	}

	if len(requestSpec.QueryString) > 0 {
		query := request.URL.Query()
		for name, value := range requestSpec.QueryString {
			query.Set(name, value)
		}
		request.URL.RawQuery = query.Encode()
	}

	return request, nil
}

// mapResponseToOptions applies the descriptor output mapping to the decoded
// response document. A document that does not match the mapping fails the
// whole call; partial option lists are never returned.
func mapResponseToOptions(
	document interface{}, output nodes.LoadOptionsOutput,
) ([]nodes.OptionRecord, *serviceerror.ServiceError) {
	root := document
	if output.RootProperty != "" {
		mapping, ok := document.(map[string]interface{})
		if !ok {
			return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
				"load options response is not an object")
		}
		value, found := nodes.ResolveParameterPath(mapping, output.RootProperty)
		if !found {
			return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
				fmt.Sprintf("root property %q not found in the load options response", output.RootProperty))
		}
		root = value
	}

	items, ok := root.([]interface{})
	if !ok {
		return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
			"load options response does not hold an option list")
	}

	nameProperty := output.NameProperty
	if nameProperty == "" {
		nameProperty = defaultOptionNameProperty
	}
	valueProperty := output.ValueProperty
	if valueProperty == "" {
		valueProperty = defaultOptionValueProperty
	}

	records := make([]nodes.OptionRecord, 0, len(items))
	for _, item := range items {
		itemMapping, ok := item.(map[string]interface{})
		if !ok {
			return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
				"load options response holds a non object option item")
		}

		name, found := nodes.ResolveParameterPath(itemMapping, nameProperty)
		if !found {
			return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
				fmt.Sprintf("option item is missing the %q property", nameProperty))
		}
		value, found := nodes.ResolveParameterPath(itemMapping, valueProperty)
		if !found {
			return nil, serviceerror.CustomServiceError(ErrorWhileResolvingParameters,
				fmt.Sprintf("option item is missing the %q property", valueProperty))
		}

		record := nodes.OptionRecord{
			Name:  optionDisplayText(name),
			Value: value,
		}
		if output.DescriptionProperty != "" {
			if description, found := nodes.ResolveParameterPath(itemMapping, output.DescriptionProperty); found {
				record.Description = optionDisplayText(description)
			}
		}
		records = append(records, record)
	}

	if output.SortByName {
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	}

	return records, nil
}

func optionDisplayText(value interface{}) string {
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprintf("%v", value)
}
