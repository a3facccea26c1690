package collab

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// PresenceManager tracks live cursors per room. Sessions are keyed by client
// ID rather than user ID so two tabs of the same user get their own cursor.
type PresenceManager struct {
	mu       sync.RWMutex
	sessions map[string]*PresencePayload
}

func NewPresenceManager() *PresenceManager {
	return &PresenceManager{
		sessions: make(map[string]*PresencePayload),
	}
}

// Update stores the latest cursor position, active tool and in-progress
// stroke preview for a client.
func (pm *PresenceManager) Update(clientID string, p *PresencePayload) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.sessions[clientID] = p
}

func (pm *PresenceManager) Remove(clientID string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.sessions, clientID)
}

func (pm *PresenceManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.sessions)
}

func (pm *PresenceManager) GetAll() map[string]*PresencePayload {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	result := make(map[string]*PresencePayload, len(pm.sessions))
	for k, v := range pm.sessions {
		result[k] = v
	}
	return result
}

// StateMessage builds the full presence snapshot sent to a client on join.
func (pm *PresenceManager) StateMessage() *Message {
	all := pm.GetAll()
	payload, err := json.Marshal(PresenceStatePayload{Presences: all})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{
		Type:    TypePresenceState,
		Payload: payload,
	}
}
