package net

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orbs/shared/protocol"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// arenaStub answers a join with one state and one winner message and
// forwards every client envelope to got.
func arenaStub(t *testing.T, got chan<- protocol.Envelope, tokens chan<- string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokens != nil {
			tokens <- r.Header.Get("Authorization")
		}
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer c.Close()
		for {
			_, data, err := c.ReadMessage()
			if err != nil {
				return
			}
			env, err := protocol.DecodeEnvelope(data)
			if err != nil {
				t.Errorf("server decode: %v", err)
				return
			}
			got <- env
			if env.Type != protocol.MsgJoin {
				continue
			}
			st, _ := protocol.Encode(protocol.MsgState, protocol.State{
				Players: map[string]protocol.PlayerView{"p1": {X: 1, Y: 2, R: 20, Name: "a"}},
				Food:    []protocol.FoodView{{X: 3, Y: 4, R: 6}},
			})
			_ = c.WriteMessage(websocket.TextMessage, []byte(`garbage`))
			_ = c.WriteMessage(websocket.TextMessage, st)
			win, _ := protocol.Encode(protocol.MsgWinner, "a")
			_ = c.WriteMessage(websocket.TextMessage, win)
		}
	}))
}

func wsURL(s *httptest.Server) string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func recvEnv(t *testing.T, ch <-chan protocol.Envelope) protocol.Envelope {
	t.Helper()
	select {
	case env, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed")
		}
		return env
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for message")
	}
	return protocol.Envelope{}
}

func TestConnRoundTrip(t *testing.T) {
	got := make(chan protocol.Envelope, 8)
	tokens := make(chan string, 1)
	srv := arenaStub(t, got, tokens)
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv), "secret")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()
	if tok := <-tokens; tok != "Bearer secret" {
		t.Fatalf("want bearer token, got %q", tok)
	}

	if err := c.Send(protocol.MsgJoin, protocol.Join{ID: "id1", Name: "a", Color: "red"}); err != nil {
		t.Fatalf("send join: %v", err)
	}
	env := recvEnv(t, got)
	var j protocol.Join
	if err := json.Unmarshal(env.Data, &j); err != nil || j.ID != "id1" {
		t.Fatalf("server saw %+v (%v)", j, err)
	}

	// the garbage frame is dropped, state and winner arrive in order
	first := recvEnv(t, c.Inbox())
	if first.Type != protocol.MsgState {
		t.Fatalf("want state first, got %q", first.Type)
	}
	st, err := protocol.DecodeState(first.Data)
	if err != nil || st.Players["p1"].R != 20 || len(st.Food) != 1 {
		t.Fatalf("unexpected state %+v (%v)", st, err)
	}
	second := recvEnv(t, c.Inbox())
	if second.Type != protocol.MsgWinner {
		t.Fatalf("want winner, got %q", second.Type)
	}

	s := c.Stats()
	if s.MsgsOut != 1 || s.MsgsIn != 2 || s.BytesIn == 0 || s.BytesOut == 0 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestConnSendAfterClose(t *testing.T) {
	got := make(chan protocol.Envelope, 8)
	srv := arenaStub(t, got, nil)
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv), "")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
	if !c.IsClosed() {
		t.Fatalf("want closed")
	}
	if err := c.Send(protocol.MsgMove, protocol.Move{ID: "x", DX: 1}); !errors.Is(err, ErrClosed) {
		t.Fatalf("want ErrClosed, got %v", err)
	}
	select {
	case _, ok := <-c.Inbox():
		if ok {
			t.Fatalf("want inbox closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("inbox not closed after Close")
	}
}

// A server-side close must release the client socket, not only the inbox.
func TestConnReleasesSocketOnServerClose(t *testing.T) {
	result := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			result <- err
			return
		}
		defer c.Close()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "round over")
		_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		if _, _, err := c.ReadMessage(); err == nil {
			result <- errors.New("want close echo from client")
			return
		}
		raw := c.NetConn()
		_ = raw.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, err = raw.Read(make([]byte, 1))
		result <- err
	}))
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv), "")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	for range c.Inbox() {
	}
	if !c.IsClosed() {
		t.Fatalf("want closed after server close")
	}
	_ = c.Close()

	select {
	case err := <-result:
		if !errors.Is(err, io.EOF) {
			t.Fatalf("want client socket closed (EOF), got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server handler did not finish")
	}
}

func TestDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := Dial(context.Background(), wsURL(srv), ""); err == nil {
		t.Fatalf("want dial error against a non-websocket endpoint")
	}
}

func TestNilConn(t *testing.T) {
	var c *Conn
	if !c.IsClosed() {
		t.Fatalf("nil conn reports closed")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
