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

// Package nodes provides the node type catalog and the registries of
// parameter resolution methods.
package nodes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/flowcanvas/quill/internal/system/config"
	"github.com/flowcanvas/quill/internal/system/log"
)

const loggerComponentName = "NodeService"

// definitionFileExtension is the only file type loaded from the definition directory.
const definitionFileExtension = ".json"

// NodeServiceInterface defines the node catalog and method registry operations.
type NodeServiceInterface interface {
	Init() error
	GetNodeType(name string, version float64) (*NodeType, error)
	ListNodeTypes() []NodeType
	RegisterOptionsMethod(nodeName, methodName string, fn OptionsMethodFunc)
	RegisterSearchMethod(nodeName, methodName string, fn SearchMethodFunc)
	RegisterMappingMethod(nodeName, methodName string, fn MappingMethodFunc)
	LookupOptionsMethod(nodeName, methodName string) (OptionsMethodFunc, bool)
	LookupSearchMethod(nodeName, methodName string) (SearchMethodFunc, bool)
	LookupMappingMethod(nodeName, methodName string) (MappingMethodFunc, bool)
}

// nodeService is the default implementation of NodeServiceInterface. The
// catalog is written during Init and method registration at startup and is
// read-only while serving requests.
type nodeService struct {
	store nodeStoreInterface

	mu             sync.RWMutex
	catalog        map[string][]NodeType
	optionsMethods map[string]OptionsMethodFunc
	searchMethods  map[string]SearchMethodFunc
	mappingMethods map[string]MappingMethodFunc
	initialized    bool
}

var (
	instance *nodeService
	once     sync.Once
)

// GetNodeService returns the singleton node service instance.
func GetNodeService() NodeServiceInterface {
	once.Do(func() {
		instance = newNodeService(newNodeStore())
	})
	return instance
}

func newNodeService(store nodeStoreInterface) *nodeService {
	return &nodeService{
		store:          store,
		catalog:        make(map[string][]NodeType),
		optionsMethods: make(map[string]OptionsMethodFunc),
		searchMethods:  make(map[string]SearchMethodFunc),
		mappingMethods: make(map[string]MappingMethodFunc),
	}
}

// Init loads the node catalog from the configured sources. Rows from the
// catalog database are loaded first and definition files override entries
// with the same name and version. Init is a no-op after the first
// successful run.
func (ns *nodeService) Init() error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if ns.initialized {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	cfg := config.GetQuillRuntime().Config

	if cfg.Database.Catalog.Type != "" {
		nodeTypes, err := ns.store.GetNodeTypeList()
		if err != nil {
			return fmt.Errorf("failed to load node types from the catalog database: %w", err)
		}
		for _, nodeType := range nodeTypes {
			ns.upsertNodeTypeLocked(nodeType)
		}
		logger.Debug("Loaded node types from the catalog database", log.Int("count", len(nodeTypes)))
	}

	if cfg.Node.DefinitionDirectory != "" {
		if err := ns.loadDefinitionDirectoryLocked(cfg.Node.DefinitionDirectory, logger); err != nil {
			return err
		}
	}

	ns.initialized = true
	return nil
}

// loadDefinitionDirectoryLocked loads node definition files from the given
// directory. Unreadable and unparsable files are logged and skipped.
func (ns *nodeService) loadDefinitionDirectoryLocked(directory string, logger *log.Logger) error {
	if !filepath.IsAbs(directory) {
		directory = filepath.Join(config.GetQuillRuntime().QuillHome, directory)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return fmt.Errorf("failed to read node definition directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), definitionFileExtension) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(directory, entry.Name()))
		if err != nil {
			logger.Warn("Skipping unreadable node definition file",
				log.String("file", entry.Name()), log.Error(err))
			continue
		}

		var nodeType NodeType
		if err := json.Unmarshal(content, &nodeType); err != nil {
			logger.Warn("Skipping unparsable node definition file",
				log.String("file", entry.Name()), log.Error(err))
			continue
		}
		if nodeType.Name == "" {
			logger.Warn("Skipping node definition file without a node name",
				log.String("file", entry.Name()))
			continue
		}

		ns.upsertNodeTypeLocked(nodeType)
		loaded++
	}

	logger.Debug("Loaded node types from the definition directory", log.Int("count", loaded))
	return nil
}

func (ns *nodeService) upsertNodeTypeLocked(nodeType NodeType) {
	versions := ns.catalog[nodeType.Name]
	for i, existing := range versions {
		if existing.Version == nodeType.Version {
			versions[i] = nodeType
			return
		}
	}

	versions = append(versions, nodeType)
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version < versions[j].Version
	})
	ns.catalog[nodeType.Name] = versions
}

// GetNodeType returns the catalog entry for the given name. A version of zero
// or less selects the latest version. When the lookup misses and a catalog
// database is configured, the name is refreshed from the database before
// giving up, so node types added after startup become visible without a restart.
func (ns *nodeService) GetNodeType(name string, version float64) (*NodeType, error) {
	ns.mu.RLock()
	nodeType, err := ns.getNodeTypeLocked(name, version)
	ns.mu.RUnlock()

	if err == nil || config.GetQuillRuntime().Config.Database.Catalog.Type == "" {
		return nodeType, err
	}

	if refreshErr := ns.refreshNodeTypesFromStore(name); refreshErr != nil {
		return nil, refreshErr
	}

	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.getNodeTypeLocked(name, version)
}

func (ns *nodeService) getNodeTypeLocked(name string, version float64) (*NodeType, error) {
	versions := ns.catalog[name]
	if len(versions) == 0 {
		return nil, ErrNodeTypeNotFound
	}

	if version <= 0 {
		nodeType := versions[len(versions)-1]
		return &nodeType, nil
	}

	for _, candidate := range versions {
		if candidate.Version == version {
			nodeType := candidate
			return &nodeType, nil
		}
	}

	return nil, ErrNodeTypeNotFound
}

// refreshNodeTypesFromStore reloads one name from the catalog database. Rows
// are only added for versions not yet in the catalog so that definition file
// entries keep precedence over database rows.
func (ns *nodeService) refreshNodeTypesFromStore(name string) error {
	nodeTypes, err := ns.store.GetNodeTypesByName(name)
	if err != nil {
		return fmt.Errorf("failed to load node type from the catalog database: %w", err)
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	for _, nodeType := range nodeTypes {
		ns.insertNodeTypeIfAbsentLocked(nodeType)
	}
	return nil
}

func (ns *nodeService) insertNodeTypeIfAbsentLocked(nodeType NodeType) {
	versions := ns.catalog[nodeType.Name]
	for _, existing := range versions {
		if existing.Version == nodeType.Version {
			return
		}
	}

	versions = append(versions, nodeType)
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version < versions[j].Version
	})
	ns.catalog[nodeType.Name] = versions
}

// ListNodeTypes returns all catalog entries ordered by name and version.
func (ns *nodeService) ListNodeTypes() []NodeType {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	names := make([]string, 0, len(ns.catalog))
	for name := range ns.catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	nodeTypes := make([]NodeType, 0, len(names))
	for _, name := range names {
		nodeTypes = append(nodeTypes, ns.catalog[name]...)
	}
	return nodeTypes
}

// RegisterOptionsMethod registers an options method for every version of the named node type.
func (ns *nodeService) RegisterOptionsMethod(nodeName, methodName string, fn OptionsMethodFunc) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.optionsMethods[methodKey(nodeName, methodName)] = fn
}

// RegisterSearchMethod registers a search method for every version of the named node type.
func (ns *nodeService) RegisterSearchMethod(nodeName, methodName string, fn SearchMethodFunc) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.searchMethods[methodKey(nodeName, methodName)] = fn
}

// RegisterMappingMethod registers a mapping method for every version of the named node type.
func (ns *nodeService) RegisterMappingMethod(nodeName, methodName string, fn MappingMethodFunc) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.mappingMethods[methodKey(nodeName, methodName)] = fn
}

// LookupOptionsMethod returns the registered options method for the node and method name.
func (ns *nodeService) LookupOptionsMethod(nodeName, methodName string) (OptionsMethodFunc, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	fn, ok := ns.optionsMethods[methodKey(nodeName, methodName)]
	return fn, ok
}

// LookupSearchMethod returns the registered search method for the node and method name.
func (ns *nodeService) LookupSearchMethod(nodeName, methodName string) (SearchMethodFunc, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	fn, ok := ns.searchMethods[methodKey(nodeName, methodName)]
	return fn, ok
}

// LookupMappingMethod returns the registered mapping method for the node and method name.
func (ns *nodeService) LookupMappingMethod(nodeName, methodName string) (MappingMethodFunc, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	fn, ok := ns.mappingMethods[methodKey(nodeName, methodName)]
	return fn, ok
}

func methodKey(nodeName, methodName string) string {
	return nodeName + "." + methodName
}
