package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"infragraph/logger"
)

//go:embed data/*.yaml
var defaultData embed.FS

var catalogFiles = []string{"cables.yaml", "pipelines.yaml", "ports.yaml", "chokepoints.yaml"}

// Load reads the reference catalogs from dir, falling back to the
// embedded defaults when dir is empty. The catalogs are static for the
// process lifetime; callers must invalidate the graph cache if they
// ever swap them.
func Load(dir string) (*Catalog, error) {
	cat := &Catalog{}

	for _, name := range catalogFiles {
		data, err := readCatalogFile(dir, name)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, cat); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
	}

	logger.Info(logger.StatusData, "Catalogs loaded: %d cables, %d pipelines, %d ports, %d chokepoints",
		len(cat.Cables), len(cat.Pipelines), len(cat.Ports), len(cat.Chokepoints))
	return cat, nil
}

func readCatalogFile(dir, name string) ([]byte, error) {
	if dir == "" {
		return defaultData.ReadFile("data/" + name)
	}
	return os.ReadFile(filepath.Join(dir, name))
}
