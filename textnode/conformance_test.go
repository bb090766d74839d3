package textnode

import (
	"testing"

	"github.com/jnodes/jnodes/adapter"
)

func TestAdapterConformance(t *testing.T) {
	adapter.RunConformance[*Node](t, Adapter{})
}
