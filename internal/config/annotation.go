package config

// AnnotationConfig holds settings for annotating game records.
type AnnotationConfig struct {
	AddFENComments  bool // Add the position after each move
	AddHashComments bool // Add the position hash after each move
	AddDrawReport   bool // Report draw conditions of the final position
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
