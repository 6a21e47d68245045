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
	"strconv"
	"strings"
)

// ResolveParameterPath resolves a dot and bracket addressed path such as
// "options.fields[2].name" against a nested parameter mapping. The second
// return value reports whether the path resolved to a value.
func ResolveParameterPath(parameters map[string]interface{}, path string) (interface{}, bool) {
	if parameters == nil || path == "" {
		return nil, false
	}

	segments, ok := splitParameterPath(path)
	if !ok {
		return nil, false
	}

	var current interface{} = parameters
	for _, segment := range segments {
		if segment.isIndex {
			list, ok := current.([]interface{})
			if !ok || segment.index < 0 || segment.index >= len(list) {
				return nil, false
			}
			current = list[segment.index]
			continue
		}

		mapping, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		value, ok := mapping[segment.key]
		if !ok {
			return nil, false
		}
		current = value
	}

	return current, true
}

type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

// splitParameterPath tokenizes a path like "a.b[0].c" into key and index segments.
func splitParameterPath(path string) ([]pathSegment, bool) {
	var segments []pathSegment

	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, false
		}

		rest := part
		for rest != "" {
			open := strings.IndexByte(rest, '[')
			if open == -1 {
				segments = append(segments, pathSegment{key: rest})
				break
			}
			if open > 0 {
				segments = append(segments, pathSegment{key: rest[:open]})
			}

			closing := strings.IndexByte(rest, ']')
			if closing == -1 || closing < open {
				return nil, false
			}
			index, err := strconv.Atoi(rest[open+1 : closing])
			if err != nil {
				return nil, false
			}
			segments = append(segments, pathSegment{index: index, isIndex: true})
			rest = rest[closing+1:]
		}
	}

	if len(segments) == 0 {
		return nil, false
	}
	return segments, true
}
