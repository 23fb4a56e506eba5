// Package presence tracks which players are hosted on this node.
//
// The game server proper feeds joins and quits; everything else only asks
// who is here and delivers rendered notices.
package presence

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Directory is the local online-player directory.
type Directory struct {
	logger zerolog.Logger

	mu     sync.RWMutex
	byName map[string]uuid.UUID
	byID   map[uuid.UUID]string
}

// NewDirectory returns an empty directory.
func NewDirectory(logger zerolog.Logger) *Directory {
	return &Directory{
		logger: logger,
		byName: make(map[string]uuid.UUID),
		byID:   make(map[uuid.UUID]string),
	}
}

// Join registers a locally connected player.
func (d *Directory) Join(id uuid.UUID, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byName[strings.ToLower(name)] = id
	d.byID[id] = name
}

// Quit removes a disconnected player.
func (d *Directory) Quit(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if name, ok := d.byID[id]; ok {
		delete(d.byName, strings.ToLower(name))
		delete(d.byID, id)
	}
}

// IsOnline reports whether the named player is hosted here.
func (d *Directory) IsOnline(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.byName[strings.ToLower(name)]

	return ok
}

// IsOnlineID reports whether the player id is hosted here.
func (d *Directory) IsOnlineID(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.byID[id]

	return ok
}

// OnlineNames returns the sorted names of locally hosted players.
func (d *Directory) OnlineNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, 0, len(d.byID))
	for _, name := range d.byID {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// OnlineIDs returns the ids of locally hosted players.
func (d *Directory) OnlineIDs() []uuid.UUID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(d.byID))
	for id := range d.byID {
		out = append(out, id)
	}

	return out
}

// Deliver hands a rendered notice to a locally hosted player.
// The transport back to the game client is the server's concern; here it
// lands in the log so callers observe delivery.
func (d *Directory) Deliver(accountID uuid.UUID, message string) {
	d.mu.RLock()
	name, ok := d.byID[accountID]
	d.mu.RUnlock()

	if !ok {
		return
	}

	d.logger.Info().Str("player", name).Str("notice", message).Msg("notice delivered")
}
