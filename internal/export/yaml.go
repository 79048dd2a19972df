package export

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func ToYAML(snap Snapshot, path string) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return writeFile(path, data, "yaml")
}
