// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gogpu/simview"
)

// feedServer runs a websocket endpoint that sends the given messages,
// then keeps the connection open until the client hangs up.
func feedServer(t *testing.T, messages ...[]byte) string {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for _, m := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, m); err != nil {
				return
			}
		}
		// Hold the stream open; exit when the peer goes away.
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// msg builds a wire envelope.
func msg(t *testing.T, typ string, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(envelope{Type: typ, Data: raw})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func dialTest(t *testing.T, url string) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, url)
	if err != nil {
		t.Fatalf("Dial() = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClient_Create(t *testing.T) {
	url := feedServer(t,
		msg(t, typeCreate, createData{
			ID:       "ball",
			Shape:    "circle",
			Radius:   7,
			Position: point{X: 30, Y: 40},
			Angle:    0.5,
		}),
	)
	c := dialTest(t, url)

	waitFor(t, "create", func() bool { return len(c.Snapshot()) == 1 })

	b := c.Snapshot()[0]
	if b.ID != "ball" {
		t.Errorf("ID = %q, want %q", b.ID, "ball")
	}
	if !b.Created {
		t.Error("announced body should be marked created")
	}
	if b.Geometry == nil || b.Geometry.Kind() != simview.ShapeCircle {
		t.Errorf("geometry = %v, want a circle", b.Geometry)
	}
	if b.State.Pos.X != 30 || b.State.Pos.Y != 40 {
		t.Errorf("position = %v, want (30, 40)", b.State.Pos)
	}
	if b.State.Angle != 0.5 {
		t.Errorf("angle = %v, want 0.5", b.State.Angle)
	}
}

func TestClient_CreatePolygon(t *testing.T) {
	url := feedServer(t,
		msg(t, typeCreate, createData{
			ID:    "box",
			Shape: "convex-polygon",
			Vertices: []point{
				{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2},
			},
		}),
	)
	c := dialTest(t, url)

	waitFor(t, "create", func() bool { return len(c.Snapshot()) == 1 })
	if kind := c.Snapshot()[0].Geometry.Kind(); kind != simview.ShapeConvexPolygon {
		t.Errorf("geometry kind = %v, want convex-polygon", kind)
	}
}

func TestClient_SyncUpdatesState(t *testing.T) {
	url := feedServer(t,
		msg(t, typeCreate, createData{ID: "a", Shape: "circle", Radius: 1}),
		msg(t, typeSync, syncData{
			Step: 0.5,
			Bodies: map[string]bodySync{
				"a": {
					Position:        point{X: 10, Y: 20},
					Angle:           1,
					LinearVelocity:  point{X: 4, Y: -6},
					AngularVelocity: 2,
				},
			},
		}),
	)
	c := dialTest(t, url)

	waitFor(t, "sync", func() bool {
		snap := c.Snapshot()
		return len(snap) == 1 && snap[0].State.Pos.X == 10
	})

	s := c.Snapshot()[0].State
	// Per-second wire velocity times the 0.5s step.
	if s.Vel.X != 2 || s.Vel.Y != -3 {
		t.Errorf("Vel = %v, want per-step (2, -3)", s.Vel)
	}
	if s.AngularVel != 1 {
		t.Errorf("AngularVel = %v, want 1", s.AngularVel)
	}

	if f := c.Fraction(time.Now()); f < 0 || f > 1 {
		t.Errorf("Fraction() = %v, want within [0, 1]", f)
	}
	if f := c.Fraction(time.Now().Add(time.Hour)); f != 1 {
		t.Errorf("Fraction far past the sync = %v, want clamped 1", f)
	}
}

func TestClient_FractionBeforeSync(t *testing.T) {
	url := feedServer(t)
	c := dialTest(t, url)

	if f := c.Fraction(time.Now()); f != 0 {
		t.Errorf("Fraction() before any sync = %v, want 0", f)
	}
}

func TestClient_Destroy(t *testing.T) {
	url := feedServer(t,
		msg(t, typeCreate, createData{ID: "a", Shape: "circle", Radius: 1}),
		msg(t, typeCreate, createData{ID: "b", Shape: "circle", Radius: 2}),
		msg(t, typeDestroy, destroyData{ID: "a"}),
	)
	c := dialTest(t, url)

	waitFor(t, "destroy", func() bool {
		snap := c.Snapshot()
		return len(snap) == 1 && snap[0].ID == "b"
	})
}

func TestClient_Meta(t *testing.T) {
	url := feedServer(t,
		msg(t, typeMeta, metaData{FPS: 58.5, IPF: 3}),
	)
	c := dialTest(t, url)

	waitFor(t, "meta", func() bool { _, _, ok := c.Meta(); return ok })

	fps, ipf, _ := c.Meta()
	if fps != 58.5 || ipf != 3 {
		t.Errorf("Meta() = (%v, %d), want (58.5, 3)", fps, ipf)
	}
}

func TestClient_MalformedMessageSkipped(t *testing.T) {
	url := feedServer(t,
		[]byte("{not json"),
		msg(t, typeCreate, createData{ID: "ok", Shape: "circle", Radius: 1}),
	)
	c := dialTest(t, url)

	// The bad frame is dropped, the stream survives and the next message
	// still lands.
	waitFor(t, "create after bad frame", func() bool { return len(c.Snapshot()) == 1 })
	if err := c.Err(); err != nil {
		t.Errorf("Err() = %v after a skipped message, want nil", err)
	}
}

func TestClient_BadCreateSkipped(t *testing.T) {
	url := feedServer(t,
		msg(t, typeCreate, createData{ID: "blob", Shape: "blob"}),
		msg(t, typeCreate, createData{ID: "flat", Shape: "circle", Radius: -1}),
		msg(t, typeCreate, createData{ID: "ok", Shape: "circle", Radius: 1}),
	)
	c := dialTest(t, url)

	waitFor(t, "valid create", func() bool { return len(c.Snapshot()) == 1 })
	if id := c.Snapshot()[0].ID; id != "ok" {
		t.Errorf("kept body = %q, want %q", id, "ok")
	}
}

func TestClient_SyncBeforeCreate(t *testing.T) {
	url := feedServer(t,
		msg(t, typeSync, syncData{
			Step:   0.1,
			Bodies: map[string]bodySync{"ghost": {Position: point{X: 5}}},
		}),
		msg(t, typeCreate, createData{ID: "ghost", Shape: "circle", Radius: 3}),
	)
	c := dialTest(t, url)

	waitFor(t, "sync-first body", func() bool {
		snap := c.Snapshot()
		return len(snap) == 1 && snap[0].Created
	})

	b := c.Snapshot()[0]
	if b.Geometry == nil {
		t.Error("geometry should arrive with the late create")
	}
}

func TestClient_CloseSetsErr(t *testing.T) {
	url := feedServer(t)
	c := dialTest(t, url)

	if err := c.Err(); err != nil {
		t.Fatalf("Err() on a live stream = %v, want nil", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := c.Err(); !errors.Is(err, ErrClosed) {
		t.Errorf("Err() after Close = %v, want ErrClosed", err)
	}
	// Closing twice is fine.
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestClient_ServerDropSetsErr(t *testing.T) {
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close()
	}))
	t.Cleanup(srv.Close)

	c := dialTest(t, "ws"+strings.TrimPrefix(srv.URL, "http"))

	waitFor(t, "terminal error", func() bool { return c.Err() != nil })
	if errors.Is(c.Err(), ErrClosed) {
		t.Error("server drop should surface the transport error, not ErrClosed")
	}
}

func TestDial_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := Dial(ctx, "ws://127.0.0.1:1/nope"); err == nil {
		t.Error("Dial() to a dead endpoint should fail")
	}
}
