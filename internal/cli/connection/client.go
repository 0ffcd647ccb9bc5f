package connection

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/tannerklineintz/triedis-cli/internal/reply"
)

// DialTimeout bounds the initial connection attempt. Established sessions
// run without deadlines; a dead peer surfaces as a per-command error.
const DialTimeout = 5 * time.Second

// Client is a synchronous client for one triedis server connection.
// It is not safe for concurrent use; the REPL drives it strictly
// request-by-request.
type Client struct {
	addr string
	conn redis.Conn
}

// Dial connects to host:port and verifies liveness with a blocking PING.
// A failure here is fatal to the session; there is no retry.
func Dial(host string, port int) (*Client, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := redis.Dial("tcp", addr, redis.DialConnectTimeout(DialTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}

	if _, err := conn.Do("PING"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", addr, err)
	}

	return &Client{addr: addr, conn: conn}, nil
}

// Addr returns the remote address the client dialed.
func (c *Client) Addr() string {
	return c.addr
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Execute sends one command and decodes the reply. Server error replies
// ("-ERR ...") come back as Go errors, as do transport failures; the
// session is left as-is either way, with no reconnection attempt.
func (c *Client) Execute(name string, args ...string) (reply.Value, error) {
	doArgs := make([]interface{}, len(args))
	for i, a := range args {
		doArgs[i] = a
	}

	v, err := c.conn.Do(name, doArgs...)
	if err != nil {
		return reply.Value{}, err
	}
	return Decode(v), nil
}

// Decode converts a reply value from the client library into the tagged
// union. Anything outside the modeled kinds lands in the Raw fallback arm.
func Decode(v interface{}) reply.Value {
	switch x := v.(type) {
	case nil:
		return reply.Nil()
	case []byte:
		return reply.Text(string(x))
	case string:
		return reply.Text(x)
	case int64:
		return reply.Integer(x)
	case []interface{}:
		elems := make([]reply.Value, len(x))
		for i, e := range x {
			elems[i] = Decode(e)
		}
		return reply.Sequence(elems...)
	default:
		return reply.Raw(fmt.Sprint(x))
	}
}
