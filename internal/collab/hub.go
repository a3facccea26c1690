package collab

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/slateboard/slateboard/backend-go/internal/document"
)

// DocumentLoader fetches the latest persisted document for a board.
type DocumentLoader func(boardID string) (*document.BoardDocument, error)

// DocumentSaver persists a new snapshot of a board document.
type DocumentSaver func(boardID string, doc *document.BoardDocument) error

// maxConcurrentSaves bounds the snapshot writes fired during shutdown.
const maxConcurrentSaves = 4

type Room struct {
	boardID  string
	clients  map[string]*Client // clientID -> client
	presence *PresenceManager
	state    *DocumentState
}

func NewRoom(boardID string, state *DocumentState) *Room {
	return &Room{
		boardID:  boardID,
		clients:  make(map[string]*Client),
		presence: NewPresenceManager(),
		state:    state,
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // boardID -> room
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	loadDoc DocumentLoader
	saveDoc DocumentSaver
}

func NewHub(loadDoc DocumentLoader, saveDoc DocumentSaver) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		loadDoc:    loadDoc,
		saveDoc:    saveDoc,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop shuts the hub down and saves every dirty document. Saves run
// concurrently but bounded so a shutdown with many open boards does not
// stampede the database.
func (h *Hub) Stop() {
	close(h.done)

	h.mu.Lock()
	rooms := make([]*Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	h.rooms = make(map[string]*Room)
	h.mu.Unlock()

	sem := semaphore.NewWeighted(maxConcurrentSaves)
	var wg sync.WaitGroup
	for _, room := range rooms {
		if !room.state.Dirty() {
			continue
		}
		if err := sem.Acquire(context.Background(), 1); err != nil {
			break
		}
		wg.Add(1)
		go func(room *Room) {
			defer wg.Done()
			defer sem.Release(1)
			h.saveRoom(room)
		}(room)
	}
	wg.Wait()
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.BoardID]
	if !ok {
		doc, err := h.loadDoc(client.BoardID)
		if err != nil {
			h.mu.Unlock()
			slog.Error("load document", "error", err, "board", client.BoardID)
			client.SendError("failed to load board")
			return
		}
		room = NewRoom(client.BoardID, NewDocumentState(doc))
		h.rooms[client.BoardID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// Tell the client its assigned ID before anything else
	welcomePayload, _ := json.Marshal(map[string]interface{}{
		"clientId": client.ClientID,
		"userId":   client.UserID,
		"sessions": room.presence.Count(),
	})
	client.Send(&Message{Type: TypeWelcome, ClientID: client.ClientID, Payload: welcomePayload})

	// Send the authoritative document to the new client
	docJSON, err := json.Marshal(room.state.GetDocument())
	if err != nil {
		slog.Error("marshal document", "error", err, "board", client.BoardID)
	} else {
		client.Send(&Message{Type: TypeDocSync, Payload: docJSON})
	}

	// Send current presence state to new client
	stateMsg := room.presence.StateMessage()
	if stateMsg != nil {
		client.Send(stateMsg)
	}

	// Broadcast join to other clients
	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	joinMsg := &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}
	h.broadcastToRoom(client.BoardID, joinMsg, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "board", client.BoardID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.BoardID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Remove(client.ClientID)

	empty := len(room.clients) == 0
	if empty {
		delete(h.rooms, client.BoardID)
	}
	h.mu.Unlock()

	// Persist the board once the last editor leaves.
	if empty {
		h.saveRoom(room)
	}

	// Broadcast leave to remaining clients
	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	leaveMsg := &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}
	h.broadcastToRoom(client.BoardID, leaveMsg, "")

	slog.Info("client left", "user", client.UserID, "board", client.BoardID)
}

func (h *Hub) saveRoom(room *Room) {
	if !room.state.Dirty() {
		return
	}
	if err := h.saveDoc(room.boardID, room.state.GetDocument()); err != nil {
		slog.Error("save document", "error", err, "board", room.boardID)
		return
	}
	room.state.MarkSaved()
	slog.Info("document saved", "board", room.boardID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	case TypeOpSubmit:
		h.handleOpSubmit(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	h.mu.RLock()
	room, ok := h.rooms[sender.BoardID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	room.presence.Update(sender.ClientID, &presence)

	// Broadcast to other clients in room
	outPayload, _ := json.Marshal(presence)
	outMsg := &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}
	h.broadcastToRoom(sender.BoardID, outMsg, sender.ClientID)
}

func (h *Hub) handleOpSubmit(sender *Client, msg *Message) {
	var payload OperationSubmitPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.Warn("invalid operation payload", "error", err, "user", sender.UserID)
		return
	}
	op := payload.Operation

	h.mu.RLock()
	room, ok := h.rooms[sender.BoardID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	var (
		serverSeq int64
		err       error
		ackEl     *document.Element
		broadcast Operation
	)

	if op.Type == OpStrokeComplete {
		// The server runs recognition/smoothing; clients receive the
		// derived element, never the raw stroke.
		var el document.Element
		el, serverSeq, err = room.state.CompleteStroke(&op)
		if err == nil {
			elJSON, _ := json.Marshal(el)
			ackEl = &el
			broadcast = Operation{
				ID:        op.ID,
				Type:      OpElementCreate,
				Timestamp: GetServerTimestamp(),
				ElementID: el.ID,
				Element:   elJSON,
			}
		}
	} else {
		serverSeq, err = room.state.ApplyOperation(&op)
		broadcast = op
	}

	if err != nil {
		nackPayload, _ := json.Marshal(OperationNackPayload{
			OperationID: op.ID,
			Reason:      err.Error(),
		})
		sender.Send(&Message{Type: TypeOpNack, Payload: nackPayload})
		return
	}

	ackPayload, _ := json.Marshal(OperationAckPayload{
		OperationID:     op.ID,
		ServerSeq:       serverSeq,
		ServerTimestamp: GetServerTimestamp(),
		Element:         ackEl,
	})
	sender.Send(&Message{Type: TypeOpAck, Payload: ackPayload})

	broadcastPayload, _ := json.Marshal(OperationBroadcastPayload{
		Operation: broadcast,
		UserID:    sender.UserID,
		ServerSeq: serverSeq,
	})
	broadcastMsg := &Message{
		Type:    TypeOpBroadcast,
		UserID:  sender.UserID,
		Payload: broadcastPayload,
	}
	h.broadcastToRoom(sender.BoardID, broadcastMsg, sender.ClientID)
}

func (h *Hub) broadcastToRoom(boardID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[boardID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
