package net

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	neturl "net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"orbs/shared/protocol"

	"github.com/gorilla/websocket"
)

var ErrClosed = errors.New("net: write on closed")

// Conn is a websocket connection to the arena server. A reader goroutine
// decodes envelopes into Inbox; the channel is closed when the socket dies.
type Conn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan protocol.Envelope
	done   chan struct{}
	closed bool

	bytesIn, bytesOut atomic.Int64
	msgsIn, msgsOut   atomic.Int64
}

// Stats are cumulative traffic counters.
type Stats struct {
	BytesIn, BytesOut int64
	MsgsIn, MsgsOut   int64
}

func Dial(ctx context.Context, wsURL, token string) (*Conn, error) {
	token = strings.TrimSpace(token)

	hdr := http.Header{}
	if token != "" {
		hdr.Set("Authorization", "Bearer "+token)
		if u, err := neturl.Parse(wsURL); err == nil {
			q := u.Query()
			q.Set("token", token)
			u.RawQuery = q.Encode()
			wsURL = u.String()
		}
	}

	log.Printf("NET: dial %s (token=%d chars)", wsURL, len(token))

	dialer := websocket.Dialer{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		Proxy: func(*http.Request) (*neturl.URL, error) {
			return nil, nil // disable proxies
		},
	}

	c, resp, err := dialer.DialContext(ctx, wsURL, hdr)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			log.Printf("NET: dial failed: %s\n%s", resp.Status, string(body))
		} else {
			log.Printf("NET: dial failed: %v", err)
		}
		return nil, err
	}

	n := &Conn{conn: c, inCh: make(chan protocol.Envelope, 128), done: make(chan struct{})}
	go n.reader(c)
	return n, nil
}

// Inbox yields decoded server messages in arrival order.
func (n *Conn) Inbox() <-chan protocol.Envelope { return n.inCh }

func (n *Conn) reader(c *websocket.Conn) {
	defer close(n.inCh)
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if !n.IsClosed() {
				log.Println("NET: read:", err)
			}
			n.markClosed()
			return
		}
		n.bytesIn.Add(int64(len(data)))
		env, err := protocol.DecodeEnvelope(data)
		if err != nil {
			log.Printf("NET: drop message: %v", err)
			continue
		}
		n.msgsIn.Add(1)
		select {
		case n.inCh <- env:
		case <-n.done:
			return
		}
	}
}

// Send writes one envelope. It never retries; a failed write closes the Conn.
func (n *Conn) Send(typ string, v any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || n.conn == nil {
		return ErrClosed
	}

	b, err := protocol.Encode(typ, v)
	if err != nil {
		return err
	}
	if err := n.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Println("NET: write:", err)
		n.closed = true
		_ = n.conn.Close()
		n.conn = nil
		return err
	}
	n.bytesOut.Add(int64(len(b)))
	n.msgsOut.Add(1)
	return nil
}

// markClosed tears the connection down after the reader lost it. The
// socket is released here since a later Close is a no-op.
func (n *Conn) markClosed() {
	n.mu.Lock()
	c := n.conn
	n.closed = true
	n.conn = nil
	n.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
}

// IsClosed reports whether Close() was called or the connection was torn down.
func (n *Conn) IsClosed() bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Close closes the websocket and marks the Conn as closed.
func (n *Conn) Close() error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	c := n.conn
	n.conn = nil
	close(n.done)
	n.mu.Unlock()

	var err error
	if c != nil {
		err = c.Close()
	}
	return err
}

func (n *Conn) Stats() Stats {
	return Stats{
		BytesIn:  n.bytesIn.Load(),
		BytesOut: n.bytesOut.Load(),
		MsgsIn:   n.msgsIn.Load(),
		MsgsOut:  n.msgsOut.Load(),
	}
}
