package paint

// Style is a named set of rectangle attributes.
type Style struct {
	Fill        string `mapstructure:"fill" json:"fill,omitempty"`
	Stroke      string `mapstructure:"stroke" json:"stroke,omitempty"`
	StrokeWidth int    `mapstructure:"stroke_width" json:"stroke_width,omitempty"`
	// Inherit names a style whose attributes fill in unset ones.
	Inherit string `mapstructure:"inherit" json:"inherit,omitempty"`
}

// Over returns s with its unset attributes taken from base.
func (s Style) Over(base Style) Style {
	if s.Fill == "" {
		s.Fill = base.Fill
	}
	if s.Stroke == "" {
		s.Stroke = base.Stroke
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = base.StrokeWidth
	}
	return s
}
