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

package utils

import (
	"encoding/json"
	"errors"
	"strings"
)

// DecodeJSONString decodes a JSON encoded string into the given type.
func DecodeJSONString[T any](value string) (T, error) {
	var decoded T
	if strings.TrimSpace(value) == "" {
		return decoded, errors.New("empty JSON value")
	}
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return decoded, err
	}
	return decoded, nil
}
