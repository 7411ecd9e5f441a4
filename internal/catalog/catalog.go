package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pricing-bot/internal/pricing"
)

const (
	casinoBaseName     = "casino-pricing"
	sportsbookBaseName = "sportsbook-pricing"
)

// Source yields the pricing catalog once at startup.
type Source interface {
	LoadCatalog(ctx context.Context) (*pricing.Catalog, error)
}

// Load reads the catalog from src and validates it.
func Load(ctx context.Context, src Source) (*pricing.Catalog, error) {
	const operation = "catalog.Load"

	cat, err := src.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return cat, nil
}

// FileSource reads casino-pricing and sportsbook-pricing files from Dir.
// Each may be .json, .yaml or .yml.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) LoadCatalog(ctx context.Context) (*pricing.Catalog, error) {
	const operation = "catalog.FileSource.LoadCatalog"

	var cat pricing.Catalog
	if err := s.read(casinoBaseName, &cat.Casino); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if err := s.read(sportsbookBaseName, &cat.Sportsbook); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return &cat, nil
}

func (s *FileSource) read(base string, out any) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(s.Dir, base+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, out)
		} else {
			err = yaml.Unmarshal(data, out)
		}
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no %s.{json,yaml,yml} in %s: %w", base, s.Dir, os.ErrNotExist)
}
