package render

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestStyledSymbol(t *testing.T) {
	for _, symbol := range []string{SymbolSelected, SymbolAnnouncement, SymbolSuccess, SymbolError} {
		t.Run(symbol, func(t *testing.T) {
			assert.Equal(t, symbol, ansi.Strip(StyledSymbol(symbol)))
		})
	}

	assert.Equal(t, "x", StyledSymbol("x"), "unknown symbols pass through unstyled")
}
