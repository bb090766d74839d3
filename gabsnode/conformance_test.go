package gabsnode

import (
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/jnodes/jnodes/adapter"
)

func TestAdapterConformance(t *testing.T) {
	adapter.RunConformance[*gabs.Container](t, Adapter{})
}
