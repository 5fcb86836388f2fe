package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpTextsEndInNewline(t *testing.T) {
	for _, help := range []string{HelpMessage, TableHelp, LookupHelp} {
		assert.True(t, strings.HasSuffix(help, "\n"))
		assert.False(t, strings.HasSuffix(help, "\n\n"))
	}
}
