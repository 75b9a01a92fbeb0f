package config

import (
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Icon is the packager icon setting. It is either a single path or an
// ordered list of paths, in which case only the first entry is used.
type Icon struct {
	Path  string
	Paths []string
}

// SingleIcon returns an Icon holding one path
func SingleIcon(path string) Icon {
	return Icon{Path: path}
}

// IconList returns an Icon holding an ordered list of paths
func IconList(paths ...string) Icon {
	return Icon{Paths: append([]string{}, paths...)}
}

// Primary returns the authoritative icon path, or "" when unset
func (i Icon) Primary() string {
	if i.IsList() {
		return lo.FirstOrEmpty(i.Paths)
	}
	return i.Path
}

// IsSet reports whether there is an icon path to work with
func (i Icon) IsSet() bool {
	return i.Primary() != ""
}

// IsList reports whether the icon was given as a list
func (i Icon) IsList() bool {
	return i.Paths != nil
}

// IsZero lets yaml omitempty drop an unset icon
func (i Icon) IsZero() bool {
	return i.Path == "" && len(i.Paths) == 0
}

// Clone returns a copy that shares no memory with i
func (i Icon) Clone() Icon {
	if i.Paths == nil {
		return Icon{Path: i.Path}
	}
	return Icon{Paths: append([]string{}, i.Paths...)}
}

// String is used in log output
func (i Icon) String() string {
	if i.IsList() {
		return fmt.Sprintf("%v", i.Paths)
	}
	return i.Path
}

// UnmarshalYAML accepts either a scalar path or a sequence of paths
func (i *Icon) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var path string
		if err := value.Decode(&path); err != nil {
			return err
		}
		*i = SingleIcon(path)
	case yaml.SequenceNode:
		var paths []string
		if err := value.Decode(&paths); err != nil {
			return err
		}
		*i = IconList(paths...)
	default:
		return fmt.Errorf("line %d: icon must be a path or a list of paths", value.Line)
	}
	return nil
}

// MarshalYAML writes a single path as a scalar and a list as a sequence
func (i Icon) MarshalYAML() (interface{}, error) {
	if i.IsList() {
		return i.Paths, nil
	}
	return i.Path, nil
}
