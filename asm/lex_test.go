package asm

import (
	"reflect"
	"testing"
)

func TestSplitLinesPreservesBlankLines(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"lf only", "a\n\nb", []string{"a", "", "b"}},
		{"cr only", "a\r\rb", []string{"a", "", "b"}},
		{"crlf pair counts once", "a\r\n\r\nb", []string{"a", "", "b"}},
		{"trailing newline adds empty last line", "a\n", []string{"a", ""}},
		{"no terminator", "a", []string{"a"}},
		{"empty source", "", []string{""}},
		{"mixed terminators", "a\rb\nc\r\nd", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %#v, want %#v", tt.source, got, tt.want)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"h q0", "h q0"},
		{"h q0 # comment", "h q0 "},
		{"# whole line is a comment", ""},
		{"z #q0", "z "},
		{"no comment here", "no comment here"},
	}
	for _, tt := range tests {
		if got := stripComment(tt.line); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"h q0", []string{"h", "q0"}},
		{"  cnot   q1  q2 ", []string{"cnot", "q1", "q2"}},
		{"rx\tq0\t1.5", []string{"rx", "q0", "1.5"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := tokenize(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q) = %v, want %v", tt.line, got, tt.want)
				break
			}
		}
	}
}
