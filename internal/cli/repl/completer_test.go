package repl

import (
	"reflect"
	"testing"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter()

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "single match",
			prefix: "PI",
			want:   []string{"PING"},
		},
		{
			name:   "case insensitive",
			prefix: "pi",
			want:   []string{"PING"},
		},
		{
			name:   "multiple matches",
			prefix: "INFO",
			want:   []string{"INFO", "INFO KEYSPACE"},
		},
		{
			name:   "no match",
			prefix: "XYZZY",
			want:   nil,
		},
		{
			name:   "quit commands",
			prefix: "q",
			want:   []string{"quit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Complete(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCompleter_EmptyPrefixReturnsAll(t *testing.T) {
	c := NewCompleter()
	if got := c.Complete(""); len(got) != len(c.commands) {
		t.Errorf("Complete(\"\") returned %d commands, want %d", len(got), len(c.commands))
	}
}

func TestCompleter_Readline(t *testing.T) {
	c := NewCompleter()
	if pc := c.Readline(); pc == nil {
		t.Fatal("Readline() = nil")
	}
}
