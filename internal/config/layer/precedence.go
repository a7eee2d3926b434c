package layer

// Standard priority levels for configuration layers.
// Higher values override lower values during lookup and merging.
const (
	// PriorityUser is for the persisted settings file.
	PriorityUser = 100

	// PriorityArgs is for command-line argument overrides.
	PriorityArgs = 600
)

// DefaultPriority returns the default priority for a given source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceArgs:
		return PriorityArgs
	default:
		return PriorityUser
	}
}

// StandardLayerNames defines standard names for configuration layers.
var StandardLayerNames = map[Source]string{
	SourceUser: "user",
	SourceArgs: "arguments",
}

// StandardLayerName returns the standard name for a source.
func StandardLayerName(source Source) string {
	if name, ok := StandardLayerNames[source]; ok {
		return name
	}
	return "unknown"
}

// NewStandardLayer creates an empty layer with the standard name and
// priority for source.
func NewStandardLayer(source Source) *Layer {
	return NewLayer(StandardLayerName(source), source, DefaultPriority(source))
}
