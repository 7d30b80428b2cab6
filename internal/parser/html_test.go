package parser

import (
	"strings"
	"testing"
)

func TestCleanPlainTextPassthrough(t *testing.T) {
	hc := NewHTMLCleaner()

	input := "  Senior Data Analyst role with SQL and Python.  "
	got := hc.Clean(input)
	if got != "Senior Data Analyst role with SQL and Python." {
		t.Errorf("Clean(plain) = %q, want trimmed passthrough", got)
	}
}

func TestCleanStripsMarkup(t *testing.T) {
	hc := NewHTMLCleaner()

	input := `<html><body>
		<script>alert("x")</script>
		<style>.a { color: red }</style>
		<p>Python developer wanted</p>
		<p>Remote friendly</p>
	</body></html>`

	got := hc.Clean(input)

	if strings.Contains(got, "alert") || strings.Contains(got, "color") {
		t.Errorf("Clean() kept script/style content: %q", got)
	}
	if !strings.Contains(got, "Python developer wanted") {
		t.Errorf("Clean() lost paragraph text: %q", got)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Errorf("Clean() = %q, want two lines of visible text", got)
	}
}

func TestCleanPreservesLineBreaks(t *testing.T) {
	hc := NewHTMLCleaner()

	got := hc.Clean("<div>Line one<br>Line two</div>")
	want := "Line one\nLine two"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanListItems(t *testing.T) {
	hc := NewHTMLCleaner()

	got := hc.Clean("<ul><li>SQL</li><li>Tableau</li></ul>")
	want := "SQL\nTableau"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}
