package bookmarks

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/filetug/dirbuf/pkg/fsutils"
	"gopkg.in/yaml.v3"
)

// Persister loads and saves the whole key to directory map.
type Persister interface {
	Load() (map[string]string, error)
	Save(marks map[string]string) error
}

type bookmark struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

var yamlMarshal = yaml.Marshal
var yamlUnmarshal = yaml.Unmarshal
var osReadFile = os.ReadFile
var osWriteFile = os.WriteFile
var osMkdirAll = os.MkdirAll

var errFilePathIsEmpty = errors.New("bookmarks file path is empty")

// YAMLFile keeps bookmarks as a YAML list sorted by key.
type YAMLFile struct {
	path string
}

var _ Persister = (*YAMLFile)(nil)

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (f *YAMLFile) Path() string {
	return f.path
}

func (f *YAMLFile) Load() (map[string]string, error) {
	if f.path == "" {
		return nil, errFilePathIsEmpty
	}
	marks := make(map[string]string)
	data, err := osReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return marks, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return marks, nil
	}
	var persisted []bookmark
	if err = yamlUnmarshal(data, &persisted); err != nil {
		return nil, err
	}
	for _, item := range persisted {
		if !ValidKey(item.Key) || item.Path == "" {
			continue
		}
		marks[item.Key] = fsutils.ExpandHome(item.Path)
	}
	return marks, nil
}

func (f *YAMLFile) Save(marks map[string]string) error {
	if f.path == "" {
		return errFilePathIsEmpty
	}
	persisted := make([]bookmark, 0, len(marks))
	for key, path := range marks {
		persisted = append(persisted, bookmark{Key: key, Path: fsutils.ContractHome(path)})
	}
	sort.Slice(persisted, func(i, j int) bool {
		return persisted[i].Key < persisted[j].Key
	})
	data, err := yamlMarshal(persisted)
	if err != nil {
		return err
	}
	if err = osMkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return osWriteFile(f.path, data, 0o644)
}
