package workflow

import "sync"

// StagedKind tags what a staged-deletion marker points at.
type StagedKind string

const (
	StageFoodItem StagedKind = "food_item"
	StageOrder    StagedKind = "order"
)

// StagedDeletion is the marker for a two-step delete: staging records which
// id an admin clicked delete on; nothing is touched until an explicit
// confirm, and an undo clears the marker. The marker carries no semantics
// beyond kind and id.
type StagedDeletion struct {
	Kind     StagedKind `json:"kind"`
	TargetID uint       `json:"target_id"`
}

// StagingArea holds at most one staged deletion per admin. It is in-memory
// and scoped to the process; markers are private to the admin who staged
// them and are not visible to or lockable by anyone else.
type StagingArea struct {
	mu      sync.Mutex
	byAdmin map[uint]StagedDeletion
}

func NewStagingArea() *StagingArea {
	return &StagingArea{byAdmin: make(map[uint]StagedDeletion)}
}

// Stage records a pending deletion for the admin, replacing any previous one.
func (s *StagingArea) Stage(adminID uint, kind StagedKind, targetID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byAdmin[adminID] = StagedDeletion{Kind: kind, TargetID: targetID}
}

// Staged returns the admin's current marker, if any.
func (s *StagingArea) Staged(adminID uint) (StagedDeletion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.byAdmin[adminID]
	return staged, ok
}

// Clear drops the admin's marker. Used both by undo and after a confirm.
func (s *StagingArea) Clear(adminID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byAdmin, adminID)
}
