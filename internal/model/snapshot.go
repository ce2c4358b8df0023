package model

import "time"

// SnapshotManifest describes one export of the collections to object storage.
type SnapshotManifest struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Objects   []SnapshotObject `json:"objects"`
}

// SnapshotObject is a single uploaded collection dump.
type SnapshotObject struct {
	Key        string `json:"key"`
	Collection string `json:"collection"`
	Records    int    `json:"records"`
	Bytes      int64  `json:"bytes"`
}
