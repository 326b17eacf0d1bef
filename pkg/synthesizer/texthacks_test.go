package synthesizer

import "testing"

func TestApplyTextHacks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ssml bool
	}{
		{
			name: "am glued to next sentence",
			in:   "8 a.m.next",
			want: "8 a.m. next",
		},
		{
			name: "pm glued to next sentence",
			in:   "see you at 2 p.m.sharp",
			want: "see you at 2 p.m. sharp",
		},
		{
			name: "acronym run alone",
			in:   "A B",
			want: "A.B. ",
		},
		{
			name: "acronym run mid sentence",
			in:   "the A I overlords",
			want: "the A.I. overlords",
		},
		{
			name: "acronym run at end",
			in:   "call the F B I",
			want: "call the F.B.I. ",
		},
		{
			name: "single letter with semicolon",
			in:   "A;",
			want: `<say-as interpret-as="spell-out">A</say-as>`,
			ssml: true,
		},
		{
			name: "quoted uppercase letter",
			in:   "the letter 'Q' is here",
			want: `the letter <say-as interpret-as="spell-out">Q</say-as> is here`,
			ssml: true,
		},
		{
			name: "two quoted letters",
			in:   "'A' then 'B'",
			want: `<say-as interpret-as="spell-out">A</say-as> then <say-as interpret-as="spell-out">B</say-as>`,
			ssml: true,
		},
		{
			name: "quoted lowercase letter untouched",
			in:   "'q' stays",
			want: "'q' stays",
		},
		{
			name: "ssml passthrough",
			in:   "<speak>hello</speak>",
			want: "<speak>hello</speak>",
			ssml: true,
		},
		{
			name: "ssml detected after leading whitespace",
			in:   "  <speak>x</speak>",
			want: "  <speak>x</speak>",
			ssml: true,
		},
		{
			name: "plain sentence",
			in:   "hello world",
			want: "hello world",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ssml := applyTextHacks(tt.in)
			if got != tt.want {
				t.Errorf("applyTextHacks(%q) text = %q, want %q", tt.in, got, tt.want)
			}
			if ssml != tt.ssml {
				t.Errorf("applyTextHacks(%q) ssml = %v, want %v", tt.in, ssml, tt.ssml)
			}
		})
	}
}

// The two-character rule wins over the quoted-letter rule and fires for any
// leading character, matching long-standing behavior.
func TestApplyTextHacksSpellOutPriority(t *testing.T) {
	got, ssml := applyTextHacks("x;")
	if got != `<say-as interpret-as="spell-out">x</say-as>` || !ssml {
		t.Errorf("applyTextHacks(\"x;\") = %q, %v", got, ssml)
	}
}
