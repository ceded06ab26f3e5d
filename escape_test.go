package marginx

import "testing"

func TestQuoteString_BaseEscapes(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\"b", `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"\b\f\r", `"\b\f\r"`},
		{"ctrl\x01", `"ctrl\u0001"`},
		{"<kept>&='", `"<kept>&='"`},
	}
	for _, tc := range cases {
		if got := string(quoteString(nil, tc.in)); got != tc.expected {
			t.Fatalf("quoteString(%q) = %s, want %s", tc.in, got, tc.expected)
		}
	}
}

func TestQuoteStringMarkup_EscapesSensitiveChars(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"<a>", `"<a>"`},
		{"a&b", `"a&b"`},
		{"k=v", `"k=v"`},
		{"it's", `"it's"`},
		{"a\"b<c", `"a\"b<c"`},
	}
	for _, tc := range cases {
		if got := string(quoteStringMarkup(nil, tc.in)); got != tc.expected {
			t.Fatalf("quoteStringMarkup(%q) = %s, want %s", tc.in, got, tc.expected)
		}
	}
}

func TestFormat_MarkupEscapingConfigurable(t *testing.T) {
	root := Object(Field("html", String("<b href='x'>&=</b>")))

	escaped, err := FormatBytes(root, true)
	if err != nil {
		t.Fatalf("FormatBytes failed: %v", err)
	}
	const expectedEscaped = "{\"html\":\"\\u003cb href\\u003d\\u0027x\\u0027\\u003e\\u0026\\u003d\\u003c/b\\u003e\"}\n"
	if string(escaped) != expectedEscaped {
		t.Fatalf("unexpected escaped output\nexpected: %q\nactual:   %q", expectedEscaped, escaped)
	}

	f, err := New(&Options{PrintMargin: 80, IndentSize: 2, RightMargin: 4, EscapeMarkup: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	raw, err := f.FormatBytes(root, true)
	if err != nil {
		t.Fatalf("FormatBytes failed: %v", err)
	}
	const expectedRaw = "{\"html\":\"<b href='x'>&=</b>\"}\n"
	if string(raw) != expectedRaw {
		t.Fatalf("unexpected raw output\nexpected: %q\nactual:   %q", expectedRaw, raw)
	}
}
