package models

// Preset is a named subset of widget types enabled together.
type Preset struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description,omitempty"`
	Widgets     []WidgetType `yaml:"widgets" json:"widgets"`
}

// Includes reports whether the preset enables widget type t.
func (p Preset) Includes(t WidgetType) bool {
	for _, w := range p.Widgets {
		if w == t {
			return true
		}
	}
	return false
}
