package history

import (
	"fmt"
	"log"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

/*
PersistentLog is a HistoryLog whose additions are also written to a
HistoryStore. Reads are served from the in-memory log only.
*/
type PersistentLog struct {
	ports.HistoryLog
	store  ports.HistoryStore
	logger *log.Logger
}

// NewPersistentLog preloads the newest capacity lines of store into mem and
// returns a log that mirrors later additions to store.
func NewPersistentLog(mem ports.HistoryLog, store ports.HistoryStore, capacity int, logger *log.Logger) (ports.HistoryLog, error) {
	if mem == nil || store == nil {
		panic("history log and store cannot be nil")
	}
	lines, err := store.Recent(capacity)
	if err != nil {
		return nil, fmt.Errorf("loading saved history: %w", err)
	}
	for _, line := range lines {
		mem.Add(line)
	}
	logger.Printf("loaded %d saved history lines", len(lines))
	return &PersistentLog{HistoryLog: mem, store: store, logger: logger}, nil
}

// Add records line in memory and in the store. A store failure is logged and
// does not affect the in-memory log.
func (p *PersistentLog) Add(line string) {
	p.HistoryLog.Add(line)
	if err := p.store.Append(line); err != nil {
		p.logger.Printf("saving history line: %v", err)
	}
}
