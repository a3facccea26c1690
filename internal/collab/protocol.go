package collab

import (
	"encoding/json"

	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

type Message struct {
	Type     string          `json:"type"`
	BoardID  string          `json:"boardId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	Selection   []string   `json:"selection,omitempty"`
	Tool        string     `json:"tool,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Document sync
	TypeDocSync = "doc.sync"

	// Operation message types
	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"
)

// Operation types applied to the board document.
const (
	OpElementCreate     = "element.create"
	OpElementDelete     = "element.delete"
	OpElementErase      = "element.erase"
	OpElementTransform  = "element.transform"
	OpElementStyle      = "element.style"
	OpElementVisibility = "element.visibility"
	OpElementLocked     = "element.locked"
	OpStrokeComplete    = "stroke.complete"
	OpBoardRename       = "board.rename"
	OpSettingsUpdate    = "settings.update"
)

// Operation represents a board document mutation. The struct is flat across
// all operation types; Type indicates which fields are meaningful.
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`

	ElementID string `json:"elementId,omitempty"`

	// For element.create
	Element json.RawMessage `json:"element,omitempty"`
	Index   *int            `json:"index,omitempty"`

	// For element.transform: a drag/resize/rotate gesture.
	Transform *TransformChange `json:"transform,omitempty"`

	// For element.style: partial style changes.
	Style json.RawMessage `json:"style,omitempty"`

	// For element.visibility / element.locked
	Visible *bool `json:"visible,omitempty"`
	Locked  *bool `json:"locked,omitempty"`

	// For element.erase: pick point in board space.
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`

	// For stroke.complete: the sealed raw stroke and its drawing style.
	Points      []ink.Point     `json:"points,omitempty"`
	StrokeStyle *document.Style `json:"strokeStyle,omitempty"`

	// For board.rename
	Name string `json:"name,omitempty"`

	// For settings.update
	Settings *document.Settings `json:"settings,omitempty"`
}

// TransformChange is the client's gesture delta: translate by (DX, DY), then
// scale/rotate about the element's current bounds center.
type TransformChange struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	SX float64 `json:"sx"`
	SY float64 `json:"sy"`
	R  float64 `json:"r"` // degrees
}

// OperationSubmitPayload is the payload for op.submit messages.
type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

// OperationAckPayload is the payload for op.ack messages.
type OperationAckPayload struct {
	OperationID     string            `json:"operationId"`
	ServerSeq       int64             `json:"serverSeq"`
	ServerTimestamp int64             `json:"serverTimestamp"`
	Element         *document.Element `json:"element,omitempty"` // derived element for stroke.complete
}

// OperationNackPayload is the payload for op.nack messages.
type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

// OperationBroadcastPayload is the payload for op.broadcast messages.
type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}
