package normalize

import "testing"

func TestAge(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "plain integer", input: "25", want: 25, wantOK: true},
		{name: "decimal truncates", input: "25.9", want: 25, wantOK: true},
		{name: "pandas float form", input: "25.0", want: 25, wantOK: true},
		{name: "digits inside text", input: "25 años", want: 25, wantOK: true},
		{name: "digits with prefix", input: "mínimo 21", want: 21, wantOK: true},
		{name: "zero is a value", input: "0", want: 0, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "no disponible", input: "No disponible", wantOK: false},
		{name: "nan", input: "NaN", wantOK: false},
		{name: "no digits", input: "veinticinco", wantOK: false},
		{name: "negative", input: "-3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Age(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestYears(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "plain integer", input: "3", want: 3, wantOK: true},
		{name: "comma decimal rounds", input: "2,5", want: 3, wantOK: true},
		{name: "dot decimal rounds", input: "1.2", want: 1, wantOK: true},
		{name: "digits inside text", input: "3 años de experiencia", want: 3, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "no disponible", input: "no disponible", wantOK: false},
		{name: "no digits", input: "sin experiencia", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Years(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Years(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
