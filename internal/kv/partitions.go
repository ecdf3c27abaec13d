package kv

import (
	"context"
	"fmt"
	"path/filepath"
)

// Partition names. "synced" is the small-quota cross-device tier holding
// settings and favorites; "local" is the larger device-only tier holding
// custom prompts and history.
const (
	PartitionSynced = "synced"
	PartitionLocal  = "local"
)

// Partitions bundles the two storage tiers the prompt store persists into.
type Partitions struct {
	Synced *Store
	Local  *Store
}

// OpenPartitions opens both partitions under dir (synced.db and local.db).
func OpenPartitions(ctx context.Context, dir string) (*Partitions, error) {
	synced, err := Open(ctx, PartitionSynced, filepath.Join(dir, "synced.db"))
	if err != nil {
		return nil, fmt.Errorf("open synced partition: %w", err)
	}
	local, err := Open(ctx, PartitionLocal, filepath.Join(dir, "local.db"))
	if err != nil {
		_ = synced.Close()
		return nil, fmt.Errorf("open local partition: %w", err)
	}
	return &Partitions{Synced: synced, Local: local}, nil
}

// Close closes both partitions, returning the first error observed.
func (p *Partitions) Close() error {
	if p == nil {
		return nil
	}
	errSynced := p.Synced.Close()
	errLocal := p.Local.Close()
	if errSynced != nil {
		return errSynced
	}
	return errLocal
}
