package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Width       int      `yaml:"width,omitempty"`
	Height      int      `yaml:"height,omitempty"`
	Layout      []string `yaml:"layout"`
}

// Extensions returns the supported level file extensions.
func Extensions() []string {
	return []string{".yaml", ".yml"}
}

// ParseYAML parses one level document. Width and height default to the
// layout's own size when omitted.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if len(yl.Layout) == 0 {
		return Level{}, fmt.Errorf("level %q has an empty layout", yl.ID)
	}

	if yl.Height <= 0 {
		yl.Height = len(yl.Layout)
	}
	if yl.Width <= 0 {
		for _, row := range yl.Layout {
			yl.Width = max(yl.Width, len([]rune(row)))
		}
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Width:       yl.Width,
		Height:      yl.Height,
		Rows:        yl.Layout,
	}, nil
}
