package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/vovakirdan/tui-flap/internal/config"
)

// SlotCount is the number of save slots.
const SlotCount = 3

// Profile is the persisted summary of one save slot.
type Profile struct {
	Slot            int     `json:"slot"`
	Name            string  `json:"name"`
	HighScore       uint32  `json:"high_score"`
	TotalGames      uint32  `json:"total_games"`
	AverageScore    float64 `json:"average_score"`
	LongestSurvival float64 `json:"longest_survival"` // seconds
	LastMode        string  `json:"last_mode,omitempty"`
	LastDifficulty  string  `json:"last_difficulty,omitempty"`
	LastTheme       string  `json:"last_theme,omitempty"`
}

// DefaultProfile is the zeroed profile of an empty slot.
func DefaultProfile(slot int) Profile {
	return Profile{Slot: slot, Name: fmt.Sprintf("Player %d", slot)}
}

// Played reports whether at least one run was recorded.
func (p Profile) Played() bool { return p.TotalGames > 0 }

// OutcomeOption adds optional run details to ApplyOutcome.
type OutcomeOption func(*Profile)

// WithSurvival records the run length; the longest one is kept.
func WithSurvival(seconds float64) OutcomeOption {
	return func(p *Profile) {
		if seconds > p.LongestSurvival {
			p.LongestSurvival = seconds
		}
	}
}

// WithSelection remembers the mode, difficulty and theme of the run.
func WithSelection(m config.Mode, d config.Difficulty, t config.Theme) OutcomeOption {
	return func(p *Profile) {
		p.LastMode = m.String()
		p.LastDifficulty = d.String()
		p.LastTheme = t.String()
	}
}

// Apply folds one finished run into the profile.
func (p Profile) Apply(score uint32, opts ...OutcomeOption) Profile {
	n := float64(p.TotalGames)
	p.AverageScore += (float64(score) - p.AverageScore) / (n + 1)
	p.TotalGames++
	if score > p.HighScore {
		p.HighScore = score
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// SlotStore keeps one JSON document per slot in a directory. Writes go
// through a temp file and rename, so a failed save leaves the old record.
type SlotStore struct {
	dir string
	mu  sync.Mutex
}

// OpenSlots prepares the save directory.
func OpenSlots(dir string) (*SlotStore, error) {
	dir, err := ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &SlotStore{dir: dir}, nil
}

// Dir returns the save directory.
func (s *SlotStore) Dir() string { return s.dir }

// Path returns the file that backs slot.
func (s *SlotStore) Path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("slot_%d.json", slot))
}

// Load returns the stored profile, or the default one when the slot is empty.
func (s *SlotStore) Load(slot int) (Profile, error) {
	if err := checkSlot(slot); err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(slot)
}

func (s *SlotStore) load(slot int) (Profile, error) {
	data, err := os.ReadFile(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultProfile(slot), nil
	}
	if err != nil {
		return Profile{}, &PersistenceError{Op: "load", Slot: slot, Err: err}
	}

	p := DefaultProfile(slot)
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, &PersistenceError{Op: "load", Slot: slot, Err: err}
	}
	p.Slot = slot
	return p, nil
}

// ApplyOutcome loads the slot, folds in one run and persists the result.
func (s *SlotStore) ApplyOutcome(slot int, score uint32, opts ...OutcomeOption) (Profile, error) {
	if err := checkSlot(slot); err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(slot)
	if err != nil {
		return Profile{}, err
	}
	p = p.Apply(score, opts...)
	if err := s.write(p); err != nil {
		return p, &PersistenceError{Op: "save", Slot: slot, Err: err}
	}
	return p, nil
}

// Save overwrites the slot with p.
func (s *SlotStore) Save(p Profile) error {
	if err := checkSlot(p.Slot); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(p); err != nil {
		return &PersistenceError{Op: "save", Slot: p.Slot, Err: err}
	}
	return nil
}

func (s *SlotStore) write(p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return renameio.WriteFile(s.Path(p.Slot), data, 0o644)
}

// Delete erases the slot. Deleting an empty slot is not an error.
func (s *SlotStore) Delete(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(slot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "delete", Slot: slot, Err: err}
	}
	return nil
}

// List loads every slot. Unreadable slots are returned as defaults and their
// errors joined.
func (s *SlotStore) List() ([]Profile, error) {
	profiles := make([]Profile, 0, SlotCount)
	var errs []error
	for slot := 1; slot <= SlotCount; slot++ {
		p, err := s.Load(slot)
		if err != nil {
			errs = append(errs, err)
			p = DefaultProfile(slot)
		}
		profiles = append(profiles, p)
	}
	return profiles, errors.Join(errs...)
}

// Leaderboard orders played profiles by high score, best first.
func Leaderboard(profiles []Profile) []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Played() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HighScore != out[j].HighScore {
			return out[i].HighScore > out[j].HighScore
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}
