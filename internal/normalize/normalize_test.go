package normalize

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "lowercase word", input: "remoto", want: "Remoto", wantOK: true},
		{name: "uppercase word", input: "REMOTO", want: "Remoto", wantOK: true},
		{name: "multi word lowers tail", input: "tiempo COMPLETO", want: "Tiempo completo", wantOK: true},
		{name: "surrounding whitespace", input: "  híbrido  ", want: "Híbrido", wantOK: true},
		{name: "accented first rune", input: "ágil", want: "Ágil", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "nan placeholder", input: "NaN", wantOK: false},
		{name: "no disponible placeholder", input: "No Disponible", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Capitalize(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Capitalize(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Re-applying Capitalize to its own output must produce the same output.
func TestCapitalize_Idempotent(t *testing.T) {
	inputs := []string{"remoto", "TIEMPO COMPLETO", "Práctica pre profesional", "jÚnior"}
	for _, in := range inputs {
		first, ok := Capitalize(in)
		if !ok {
			t.Fatalf("Capitalize(%q) unexpectedly not ok", in)
		}
		second, ok := Capitalize(first)
		if !ok || second != first {
			t.Errorf("Capitalize(Capitalize(%q)) = %q, %v; want %q, true", in, second, ok, first)
		}
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "messy tokens", input: "Python, python , SQL,,", want: "Python,Python,Sql", wantOK: true},
		{name: "single token", input: "docker", want: "Docker", wantOK: true},
		{name: "quoted tokens", input: `"React", "Vue"`, want: "React,Vue", wantOK: true},
		{name: "order preserved", input: "zebra,alfa", want: "Zebra,Alfa", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "only delimiters", input: ",,,", wantOK: false},
		{name: "nan placeholder", input: "nan", wantOK: false},
		{name: "scraper junk", input: "llena nomas XD", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := List(tt.input, ",")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("List(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNotSpecified(t *testing.T) {
	for _, raw := range []string{"", "  ", "nan", "NAN", "no disponible", "No Disponible "} {
		if !NotSpecified(raw) {
			t.Errorf("NotSpecified(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"0", "remoto", "-"} {
		if NotSpecified(raw) {
			t.Errorf("NotSpecified(%q) = true, want false", raw)
		}
	}
}
