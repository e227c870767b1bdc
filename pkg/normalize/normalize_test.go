package normalize_test

import (
	"testing"

	"voice-todo/pkg/normalize"
)

func TestTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "collapse and trim", in: "  buy    milk\ttomorrow  ", want: "buy milk tomorrow"},
		{name: "case preserved", in: "Call NASA", want: "Call NASA"},
		{name: "fullwidth digits", in: "at \uff12:\uff13\uff10 pm", want: "at 2:30 pm"},
		{name: "curly apostrophe", in: "don\u2019t forget to", want: "don't forget to"},
		{name: "zero width joiner removed", in: "bu\u200dy milk", want: "buy milk"},
		{name: "invalid utf8 dropped", in: "buy\xffmilk", want: "buymilk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Transcript(tt.in); got != tt.want {
				t.Errorf("Transcript(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
