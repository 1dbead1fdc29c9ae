package categorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/cmd/categorize"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize")
	assert.Contains(t, categorize.Cmd.Long, "spending category")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	vendorFlag := categorize.Cmd.Flags().Lookup("vendor")
	require.NotNil(t, vendorFlag)
	assert.Equal(t, "v", vendorFlag.Shorthand)

	textFlag := categorize.Cmd.Flags().Lookup("text")
	require.NotNil(t, textFlag)
	assert.Equal(t, "t", textFlag.Shorthand)
}
