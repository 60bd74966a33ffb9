package ws

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Client recebe eventos de cálculo. Currency vazio assina todas as moedas.
type Client struct {
	ID       string
	Currency string
	Send     chan []byte
}

func (c *Client) wants(currency string) bool {
	return currency == "" || c.Currency == "" || strings.EqualFold(c.Currency, currency)
}

// Event é um evento de cálculo já serializado, com a moeda usada no filtro.
type Event struct {
	Currency string
	Body     []byte
}

type unicastMsg struct {
	id  string
	msg []byte
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client // id -> client
	register chan *Client
	unreg    chan *Client

	events  chan Event      // envio filtrado por moeda
	unicast chan unicastMsg // envio para 1 cliente

	log     *slog.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID    atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		events:   make(chan Event, 1024),
		unicast:  make(chan unicastMsg, 1024),
		log:      log.With("cmp", "ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) newID() string {
	id := h.nextID.Add(1)
	return fmt.Sprintf("c%d", id)
}

func (h *Hub) Run() {
	h.log.Info("hub_run_start")
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_registered", "id", c.ID, "currency", c.Currency, "total", total)

		case c := <-h.unreg:
			if c == nil || c.ID == "" {
				continue
			}
			h.mu.Lock()
			if cc, ok := h.clients[c.ID]; ok && cc == c {
				delete(h.clients, c.ID)
				close(c.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_unregistered", "id", c.ID, "total", total)

		case ev := <-h.events:
			h.dispatch(ev)

		case u := <-h.unicast:
			h.mu.RLock()
			c := h.clients[u.id]
			h.mu.RUnlock()
			if c == nil {
				h.log.Warn("send_one_miss", "id", u.id)
				continue
			}
			select {
			case c.Send <- u.msg:
			default:
				h.drop(c)
				h.log.Warn("send_one_drop_slow", "id", u.id)
			}

		case <-h.stop:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			h.log.Info("hub_run_stop",
				"delivered", h.delivered.Load(), "dropped", h.dropped.Load())
			return
		}
	}
}

// dispatch entrega o evento a quem assina a moeda; cliente lento é
// removido para não travar o hub.
func (h *Hub) dispatch(ev Event) {
	var slow []*Client
	h.mu.RLock()
	for _, c := range h.clients {
		if !c.wants(ev.Currency) {
			continue
		}
		select {
		case c.Send <- ev.Body:
			h.delivered.Add(1)
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.drop(c)
		h.log.Warn("client_drop_slow", "id", c.ID, "currency", ev.Currency)
	}
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	if cc := h.clients[c.ID]; cc == c {
		delete(h.clients, c.ID)
		close(c.Send)
		h.dropped.Add(1)
	}
	h.mu.Unlock()
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

// Count devolve o número de clientes conectados.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register gera o ID antes de entregar ao loop, para o chamador já poder usá-lo.
func (h *Hub) Register(c *Client) {
	if c.ID == "" {
		c.ID = h.newID()
	}
	h.register <- c
}

func (h *Hub) Unregister(c *Client) { h.unreg <- c }

// Publish repassa um evento; currency vazio vai para todos os clientes.
func (h *Hub) Publish(currency string, b []byte) {
	h.events <- Event{Currency: currency, Body: b}
}

func (h *Hub) Broadcast(b []byte)               { h.Publish("", b) }
func (h *Hub) SendToClient(id string, b []byte) { h.unicast <- unicastMsg{id: id, msg: b} }
