package tmdb

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<b>Cat</b> and   mouse", "Cat and mouse"},
		{"<Untitled>", "<Untitled>"},
		{"The <Blank> Project", "The <Blank> Project"},
		{"1 < 2 and 3 > 2", "1 < 2 and 3 > 2"},
		{"<i>Alien</i> &lt;Director's Cut&gt;", "Alien <Director's Cut>"},
		{"line one<br/>line two", "line one line two"},
		{"  plain\ttext \n", "plain text"},
	}

	for _, tt := range tests {
		if got := cleanText(tt.in); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeEntities_KeepsBrackets(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<Untitled>", "<Untitled>"},
		{"a<b>c", "a<b>c"},
		{"Caf&eacute; <i>Society</i>", "Café <i>Society</i>"},
	}

	for _, tt := range tests {
		if got := decodeEntities(tt.in); got != tt.want {
			t.Errorf("decodeEntities(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
