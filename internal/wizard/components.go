package wizard

type Component int

const (
	ComponentLCC Component = iota
	ComponentGPP
)

// AllComponents is the display order on the Components screen.
var AllComponents = []Component{ComponentLCC, ComponentGPP}

func (c Component) String() string {
	switch c {
	case ComponentLCC:
		return "lcc"
	case ComponentGPP:
		return "g++"
	default:
		return "unknown"
	}
}

func (c Component) Label() string {
	switch c {
	case ComponentLCC:
		return "LCC (with all standard libraries)"
	case ComponentGPP:
		return "G++ (Only install if you don't have)"
	default:
		return "Unknown component"
	}
}
