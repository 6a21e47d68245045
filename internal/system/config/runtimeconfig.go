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

package config

import "sync"

// QuillRuntime holds the runtime configuration for the Quill server.
type QuillRuntime struct {
	QuillHome string `yaml:"quill_home"`
	Config    Config `yaml:"config"`
}

var (
	runtimeConfig *QuillRuntime
	once          sync.Once
)

// InitializeQuillRuntime initializes the QuillRuntime configuration.
func InitializeQuillRuntime(quillHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &QuillRuntime{
			QuillHome: quillHome,
			Config:    *config,
		}
	})

	return nil
}

// GetQuillRuntime returns the QuillRuntime configuration.
func GetQuillRuntime() *QuillRuntime {
	if runtimeConfig == nil {
		panic("QuillRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetQuillRuntime resets the QuillRuntime.
// This should only be used in tests to reset the singleton state.
func ResetQuillRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
