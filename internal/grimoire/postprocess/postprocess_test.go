package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityReturnsInputUnchanged(t *testing.T) {
	var p Processor = Identity{}
	out, err := p.Process(".a{color:red}", DefaultBrowserslist)
	require.NoError(t, err)
	assert.Equal(t, ".a{color:red}", out)
}
