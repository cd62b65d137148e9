package model

// BrandProfile describes a business identity used to personalize generated text.
type BrandProfile struct {
	Name           string   `json:"name" yaml:"name"`
	Industry       string   `json:"industry" yaml:"industry"`
	Tone           string   `json:"tone" yaml:"tone"`
	TargetAudience string   `json:"target_audience" yaml:"target_audience"`
	KeyValues      []string `json:"key_values" yaml:"key_values"`
	SamplePosts    []string `json:"sample_posts,omitempty" yaml:"sample_posts"`
	ColorScheme    []string `json:"color_scheme,omitempty" yaml:"color_scheme"`
}
