package menu

// Opener opens an external resource such as a web page. Failures belong to
// the presentation layer; the menu never looks at the returned error.
type Opener interface {
	Open(url string) error
}

// State is the only mutable value shared by every click and every expansion.
// It is owned by the presentation layer and handed to the menu by pointer.
type State struct {
	// SaveAction is set once the player wins and is never cleared again.
	SaveAction Clickable
	// InsertedDiskInDriveA unlocks the A:\ drive.
	InsertedDiskInDriveA bool
	// DarkWebEnabled adds the hidden top-level category.
	DarkWebEnabled bool

	opener Opener
}

// NewState returns the start-of-run state: nothing saved, no disk, hidden
// mode off. A nil opener silently drops Open calls.
func NewState(opener Opener) *State {
	return &State{opener: opener}
}

// Open forwards url to the external opener.
func (s *State) Open(url string) {
	if s == nil || s.opener == nil {
		return
	}
	_ = s.opener.Open(url)
}

// Snapshot is a comparable copy of the game-relevant fields of State.
type Snapshot struct {
	Saved                bool `json:"saved"`
	InsertedDiskInDriveA bool `json:"insertedDiskInDriveA"`
	DarkWebEnabled       bool `json:"darkWebEnabled"`
}

// Snapshot captures the current flags.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Saved:                s.SaveAction != nil,
		InsertedDiskInDriveA: s.InsertedDiskInDriveA,
		DarkWebEnabled:       s.DarkWebEnabled,
	}
}
