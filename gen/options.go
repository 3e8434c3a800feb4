package gen

// Options is the full configuration surface a Generator reads. It is a
// value object: constructed once, never written after that. mapstructure
// tags let the CLI decode it straight from viper settings.
type Options struct {
	// TargetVersion selects language-level idioms, e.g. "3.10" enables
	// match statements for python, "17" enables records for java.
	TargetVersion string `mapstructure:"target-version"`
	// NamespacePrefix becomes the java package line; python ignores it.
	NamespacePrefix string `mapstructure:"namespace"`
	// IndentWidth is spaces per indent level; 0 means the default of 4.
	IndentWidth int `mapstructure:"indent"`
	// PreserveComments re-emits leading comments and reformats doc blocks
	// into the target's documentation convention.
	PreserveComments bool `mapstructure:"comments"`
	// UseIdiomaticValueObjects emits frozen dataclasses / records for
	// classes that are plain immutable field holders.
	UseIdiomaticValueObjects bool `mapstructure:"value-objects"`
	// EmitTypedSignatures emits type hints on the python side; java is
	// always typed.
	EmitTypedSignatures bool `mapstructure:"typed"`
}
