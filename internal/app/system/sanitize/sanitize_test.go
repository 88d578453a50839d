package sanitize

import "testing"

func TestMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Коли будуть результати виборів?",
			want:  "Коли будуть результати виборів?",
		},
		{
			name:  "script tag removed",
			input: "<script>alert('x')</script>hello",
			want:  "hello",
		},
		{
			name:  "markup characters stripped",
			input: "a < b > c / d",
			want:  "a  b  c  d",
		},
		{
			name:  "html entities decoded then stripped",
			input: "q &lt;b&gt;bold&lt;/b&gt;",
			want:  "q bboldb",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  питання  ",
			want:  "питання",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.input); got != tt.want {
				t.Errorf("Message(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
