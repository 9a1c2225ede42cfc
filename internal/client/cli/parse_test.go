package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "plain tokens", line: "spells acid arrow", want: []string{"spells", "acid", "arrow"}},
		{name: "double quotes keep words together", line: `spells "Acid Arrow"`, want: []string{"spells", "Acid Arrow"}},
		{name: "single quotes keep words together", line: "spells 'Acid Arrow'", want: []string{"spells", "Acid Arrow"}},
		{name: "extra whitespace collapsed", line: "  spells    fireball  ", want: []string{"spells", "fireball"}},
		{name: "unmatched double quote", line: `spells "Acid`, wantErr: true},
		{name: "unmatched single quote", line: "spells 'Acid", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tokenize(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
