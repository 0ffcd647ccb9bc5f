package reply

import "testing"

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"nil", Nil(), KindNil},
		{"text", Text("hello"), KindText},
		{"integer", Integer(42), KindInteger},
		{"sequence", Sequence(Text("a"), Integer(1)), KindSequence},
		{"empty sequence", Sequence(), KindSequence},
		{"raw", Raw("3.14"), KindRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.v.Kind, tt.kind)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil(), "nil"},
		{"text", Text("a b"), `"a b"`},
		{"integer", Integer(-3), "-3"},
		{"nested", Sequence(Integer(1), Sequence(Text("x"))), `[1 ["x"]]`},
		{"empty sequence", Sequence(), "[]"},
		{"raw", Raw("1.5"), "raw(1.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
