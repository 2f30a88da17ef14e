package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	os.Setenv("CARDIGAN_TEST_KEY", "secret-value")
	t.Cleanup(func() { os.Unsetenv("CARDIGAN_TEST_KEY") })

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "expands template variable",
			input: "api_key_env: {{.CARDIGAN_TEST_KEY}}",
			want:  "api_key_env: secret-value",
		},
		{
			name:  "missing variable expands to empty",
			input: "value: {{.CARDIGAN_DOES_NOT_EXIST}}",
			want:  "value: ",
		},
		{
			name:  "dollar signs pass through untouched",
			input: "pattern: media_$ID_.*",
			want:  "pattern: media_$ID_.*",
		},
		{
			name:  "plain YAML unchanged",
			input: "listen_addr: \":8080\"",
			want:  "listen_addr: \":8080\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpandEnv_MalformedTemplatePassesThrough(t *testing.T) {
	input := "value: {{.UNCLOSED"
	got := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(got))
}
