package resolve

import (
	"time"

	"github.com/google/uuid"
	"github.com/jnodes/jnodes/jnode"
)

// shortMacro evaluates one of the ≤5-character "#" macros of spec.md
// §4.D step 3, matched case-insensitively. ok is false if name is not a
// recognized macro.
func shortMacro(lower string) (*jnode.Node, bool) {
	switch lower {
	case "#uuid":
		return jnode.FromString(uuid.New().String()), true
	case "#null":
		return jnode.NullNode(), true
	case "#now":
		return jnode.FromString(time.Now().UTC().Format(time.RFC3339)), true
	default:
		return nil, false
	}
}
