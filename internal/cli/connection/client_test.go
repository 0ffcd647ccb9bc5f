package connection

import (
	"io"
	"net"
	"strings"
	"testing"

	"github.com/tannerklineintz/triedis-cli/internal/reply"
)

// fakeServer accepts one connection and writes pre-canned RESP replies,
// discarding whatever the client sends. The first reply must answer the
// PING probe issued by Dial.
func fakeServer(t *testing.T, canned string) (host string, port int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.WriteString(conn, canned)
		io.Copy(io.Discard, conn)
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port
}

// ============================================================
// Dial Tests
// ============================================================

func TestDial_ProbeSucceeds(t *testing.T) {
	host, port := fakeServer(t, "+PONG\r\n")

	c, err := Dial(host, port)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer c.Close()

	if !strings.Contains(c.Addr(), "127.0.0.1") {
		t.Errorf("Addr() = %q, want 127.0.0.1 address", c.Addr())
	}
}

func TestDial_Refused(t *testing.T) {
	// Grab a free port, then close the listener so nothing accepts.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	if _, err := Dial("127.0.0.1", port); err == nil {
		t.Fatal("Dial() error = nil, want connection error")
	}
}

func TestDial_ProbeErrorReply(t *testing.T) {
	host, port := fakeServer(t, "-ERR loading dataset\r\n")

	if _, err := Dial(host, port); err == nil {
		t.Fatal("Dial() error = nil, want probe error")
	}
}

// ============================================================
// Execute Tests
// ============================================================

func TestClient_Execute(t *testing.T) {
	canned := "+PONG\r\n" + // probe
		"$5\r\nhello\r\n" +
		":42\r\n" +
		"$-1\r\n" +
		"*2\r\n:1\r\n:2\r\n"
	host, port := fakeServer(t, canned)

	c, err := Dial(host, port)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer c.Close()

	tests := []struct {
		name string
		cmd  string
		args []string
		want reply.Value
	}{
		{"bulk string", "GET", []string{"k"}, reply.Text("hello")},
		{"integer", "DBSIZE", nil, reply.Integer(42)},
		{"nil", "GET", []string{"missing"}, reply.Nil()},
		{"array", "KEYS", []string{"*"}, reply.Sequence(reply.Integer(1), reply.Integer(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Execute(tt.cmd, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got.String() != tt.want.String() {
				t.Errorf("Execute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_Execute_ErrorReply(t *testing.T) {
	host, port := fakeServer(t, "+PONG\r\n-ERR unknown command 'FOO'\r\n")

	c, err := Dial(host, port)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer c.Close()

	_, err = c.Execute("FOO")
	if err == nil {
		t.Fatal("Execute() error = nil, want server error")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %v, want server error text", err)
	}
}

// ============================================================
// Decode Tests
// ============================================================

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want reply.Value
	}{
		{"nil", nil, reply.Nil()},
		{"bytes", []byte("abc"), reply.Text("abc")},
		{"status string", "OK", reply.Text("OK")},
		{"integer", int64(-3), reply.Integer(-3)},
		{"empty array", []interface{}{}, reply.Sequence()},
		{
			"nested array",
			[]interface{}{[]byte("a"), int64(2), []interface{}{nil}},
			reply.Sequence(reply.Text("a"), reply.Integer(2), reply.Sequence(reply.Nil())),
		},
		{"unknown kind", 3.14, reply.Raw("3.14")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			if got.String() != tt.want.String() {
				t.Errorf("Decode(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
