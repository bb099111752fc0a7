package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skinlens/backend/internal/domain"
)

//go:embed products.yaml
var embeddedCatalog []byte

// EmbeddedSource names the catalog compiled into the binary
const EmbeddedSource = "embedded:products.yaml"

// catalogFile is the top-level structure of a YAML catalog
type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// LoadEmbedded loads the catalog compiled into the binary
func LoadEmbedded() (*Store, error) {
	return LoadYAML(embeddedCatalog, EmbeddedSource)
}

// MustLoadEmbedded is LoadEmbedded for callers that treat a broken embedded
// catalog as a build defect
func MustLoadEmbedded() *Store {
	store, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return store
}

// LoadYAML parses a YAML catalog document
func LoadYAML(data []byte, source string) (*Store, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: parse yaml: %v", domain.ErrInvalidCatalog, source, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%w: %s: no products", domain.ErrInvalidCatalog, source)
	}
	return New(f.Products, source)
}

// LoadFile loads an operator-supplied catalog, choosing the format by file
// extension (.yaml, .yml or .xlsx)
func LoadFile(path string) (*Store, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		return LoadYAML(data, path)
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog %s: %w", path, err)
		}
		defer f.Close()
		return LoadXLSX(f, path)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", domain.ErrInvalidCatalog, ext)
	}
}

// Load returns the catalog at path, or the embedded catalog when path is empty
func Load(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return LoadEmbedded()
	}
	return LoadFile(path)
}
