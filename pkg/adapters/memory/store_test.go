package memory_test

import (
	"testing"

	"github.com/nsfeld/salescoach/pkg/adapters/memory"
	"github.com/nsfeld/salescoach/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
