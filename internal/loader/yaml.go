package loader

import (
	"fmt"

	"github.com/born-ml/topology/internal/arch"
	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) (arch.Description, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML description: %w", err)
	}
	return FromGeneric(raw)
}
