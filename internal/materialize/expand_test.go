package materialize

import (
	"testing"

	"github.com/dhemric/spaenv/internal/env"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	snap := env.NewSnapshot(map[string]string{
		"ENV":      "prod",
		"BASE_URL": "/api",
		"FOO":      "foo-value",
		"REF":      "$FOO",
		"EMPTY":    "",
	})

	tests := []struct {
		name           string
		input          string
		want           string
		wantReplaced   int
		wantUnresolved []string
	}{
		{
			name:         "bare token",
			input:        `{"ENV":"$ENV"}`,
			want:         `{"ENV":"prod"}`,
			wantReplaced: 1,
		},
		{
			name:         "braced token",
			input:        `url: ${BASE_URL}/v1`,
			want:         `url: /api/v1`,
			wantReplaced: 1,
		},
		{
			name:         "both forms end to end",
			input:        `{"ENV":"$ENV","BASE_URL":"$BASE_URL"}`,
			want:         `{"ENV":"prod","BASE_URL":"/api"}`,
			wantReplaced: 2,
		},
		{
			name:           "unknown bare token preserved verbatim",
			input:          `{"ENV":"$ENV","BASE_URL":"$MISSING"}`,
			want:           `{"ENV":"prod","BASE_URL":"$MISSING"}`,
			wantReplaced:   1,
			wantUnresolved: []string{"MISSING"},
		},
		{
			name:           "unknown braced token keeps braces",
			input:          `x=${NOT_SET}`,
			want:           `x=${NOT_SET}`,
			wantUnresolved: []string{"NOT_SET"},
		},
		{
			name:         "substituted value is not re-expanded",
			input:        `a=$REF`,
			want:         `a=$FOO`,
			wantReplaced: 1,
		},
		{
			name:         "bare name is greedy",
			input:        `$FOOBAR`,
			want:         `$FOOBAR`,
			wantReplaced: 0,
			// FOO is defined but the name extends over all identifier
			// characters, so the candidate is FOOBAR.
			wantUnresolved: []string{"FOOBAR"},
		},
		{
			name:         "braces delimit where bare would be greedy",
			input:        `${FOO}BAR`,
			want:         `foo-valueBAR`,
			wantReplaced: 1,
		},
		{
			name:         "empty value substitution",
			input:        `[$EMPTY]`,
			want:         `[]`,
			wantReplaced: 1,
		},
		{
			name:  "lone dollar at end",
			input: `price: 5$`,
			want:  `price: 5$`,
		},
		{
			name:  "dollar before digit",
			input: `$5.99`,
			want:  `$5.99`,
		},
		{
			name:  "unterminated brace",
			input: `${FOO`,
			want:  `${FOO`,
		},
		{
			name:  "empty braces",
			input: `${}`,
			want:  `${}`,
		},
		{
			name:  "brace with bad char",
			input: `${FOO-BAR}`,
			want:  `${FOO-BAR}`,
		},
		{
			name:         "adjacent tokens",
			input:        `$ENV$BASE_URL`,
			want:         `prod/api`,
			wantReplaced: 2,
		},
		{
			name:  "no placeholders",
			input: `plain text, nothing to do`,
			want:  `plain text, nothing to do`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced, unresolved := Expand([]byte(tt.input), snap)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantReplaced, replaced)
			assert.Equal(t, tt.wantUnresolved, unresolved)
		})
	}
}

func TestExpandNoMatchesIsByteIdentical(t *testing.T) {
	snap := env.NewSnapshot(map[string]string{"OTHER": "x"})
	input := []byte("{\"ENV\":\"$ENV\"}\n\x00binary-ish\xff ${STILL_MISSING}")

	once, _, _ := Expand(input, snap)
	twice, _, _ := Expand(once, snap)

	assert.Equal(t, input, once)
	assert.Equal(t, once, twice)
}
