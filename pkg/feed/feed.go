package feed

import (
	"context"
	"net/http"
	"sync"

	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/messages"
	"nhooyr.io/websocket"
)

// Feed broadcasts resolved spins to WebSocket subscribers. Each subscriber
// receives every spin persisted after it connected, as a zstd-compressed
// JSON message.
type Feed struct {
	subscribers     map[uint32]*subscriber
	subscribersLock sync.RWMutex
	nextID          uint32
}

type subscriber struct {
	id   uint32
	conn *websocket.Conn
}

func NewFeed() *Feed {
	return &Feed{
		subscribers: make(map[uint32]*subscriber),
		nextID:      1,
	}
}

// Handler returns an http.HandlerFunc that upgrades the request to a
// WebSocket connection and subscribes it to the feed. The connection is
// held open until the client disconnects.
func (f *Feed) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		log.Debug("New feed subscriber from %s", r.RemoteAddr)

		id := f.addSubscriber(conn)
		defer f.removeSubscriber(id)

		ctx := r.Context()
		for {
			// Subscribers only receive; drain incoming frames to detect close.
			if _, _, err := conn.Read(ctx); err != nil {
				log.Trace("Feed subscriber %d disconnected: %v", id, err)
				return
			}
		}
	}
}

// Broadcast serializes the spin result once and writes it to every
// subscriber. Subscribers that fail to receive are dropped.
func (f *Feed) Broadcast(ctx context.Context, result *messages.SpinResult) {
	msg, err := messages.NewSpinResultMessage(result)
	if err != nil {
		log.Error("Failed to create spin result message: %v", err)
		return
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		log.Error("Failed to serialize spin result message: %v", err)
		return
	}

	for _, sub := range f.getSubscribers() {
		if err := sub.conn.Write(ctx, websocket.MessageBinary, b); err != nil {
			log.Warn("Failed to write to feed subscriber %d: %v", sub.id, err)
			f.removeSubscriber(sub.id)
		}
	}
}

func (f *Feed) addSubscriber(conn *websocket.Conn) uint32 {
	f.subscribersLock.Lock()
	defer f.subscribersLock.Unlock()
	id := f.nextID
	f.nextID++
	f.subscribers[id] = &subscriber{
		id:   id,
		conn: conn,
	}
	return id
}

func (f *Feed) removeSubscriber(id uint32) {
	f.subscribersLock.Lock()
	defer f.subscribersLock.Unlock()
	if sub, ok := f.subscribers[id]; ok {
		sub.conn.Close(websocket.StatusNormalClosure, "")
		delete(f.subscribers, id)
	}
}

func (f *Feed) getSubscribers() []*subscriber {
	f.subscribersLock.RLock()
	defer f.subscribersLock.RUnlock()
	subs := make([]*subscriber, 0, len(f.subscribers))
	for _, sub := range f.subscribers {
		subs = append(subs, sub)
	}
	return subs
}
