package pool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"offscreen/internal/jsonutil"
)

// File is the on-disk shape of a pools file:
//
//	categories:
//	  - key: cooking
//	    title: Cooking
//	    tasks: [...]
type File struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// LoadFile reads a catalog from path. Files ending in .json are decoded as
// JSON (either a File object or a bare array of categories); anything else
// is YAML.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pools %q: %w", path, err)
	}
	return Parse(b, filepath.Ext(path), path)
}

// Parse decodes a catalog from data. ext selects the format (".json" or YAML otherwise);
// name is used as error context.
func Parse(data []byte, ext, name string) (*Catalog, error) {
	var f File
	if strings.EqualFold(ext, ".json") {
		if jsonutil.IsArray(data) {
			cats, err := jsonutil.UnmarshalArray[Category](data, name)
			if err != nil {
				return nil, err
			}
			f.Categories = cats
		} else if err := jsonutil.UnmarshalStrict(data, &f, name); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("%s: no categories", name)
	}
	c, err := NewCatalog(f.Categories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}
