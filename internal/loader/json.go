package loader

import (
	"fmt"

	"github.com/born-ml/topology/internal/arch"
	"github.com/ohler55/ojg/oj"
)

func decodeJSON(data []byte) (arch.Description, error) {
	raw, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON description: %w", err)
	}
	return FromGeneric(raw)
}
