package config

import (
	"encoding/json"
	"fmt"

	"ipapad/internal/model"
)

// diskConfig is the persisted shape. Four independent booleans plus
// the order array — kept flat for backward compatibility with existing
// saved state. Pointer fields so a missing key can be told apart from
// an explicit false and fall back to its default individually.
type diskConfig struct {
	ShowVowels          *bool    `json:"showVowels,omitempty"`
	ShowConsonants      *bool    `json:"showConsonants,omitempty"`
	ShowDiacritics      *bool    `json:"showDiacritics,omitempty"`
	ShowSuprasegmentals *bool    `json:"showSuprasegmentals,omitempty"`
	CategoryOrder       []string `json:"categoryOrder,omitempty"`
}

// Store owns category visibility and display order, and drives
// persistence through its Storage collaborator. All categories default
// to visible, order defaults to the built-in category order.
type Store struct {
	storage    Storage
	visibility map[string]bool
	order      []string
	onChange   func() // palette re-render request; may be nil
}

func NewStore(storage Storage, onChange func()) *Store {
	s := &Store{
		storage:  storage,
		onChange: onChange,
	}
	s.applyDefaults()
	return s
}

func (s *Store) applyDefaults() {
	s.visibility = make(map[string]bool, len(model.Categories()))
	for _, name := range model.CategoryNames() {
		s.visibility[name] = true
	}
	s.order = model.CategoryNames()
}

// Load merges persisted data over the defaults. Missing or malformed
// fields fall back individually; only a storage read failure is
// reported, and the in-memory defaults stay usable either way.
func (s *Store) Load() error {
	s.applyDefaults()

	data, err := s.storage.LoadData()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil // first run
	}

	var disk diskConfig
	if err := json.Unmarshal(data, &disk); err != nil {
		// Unreadable blob: keep defaults rather than erroring.
		return nil
	}

	if disk.ShowVowels != nil {
		s.visibility[model.CategoryVowels] = *disk.ShowVowels
	}
	if disk.ShowConsonants != nil {
		s.visibility[model.CategoryConsonants] = *disk.ShowConsonants
	}
	if disk.ShowDiacritics != nil {
		s.visibility[model.CategoryDiacritics] = *disk.ShowDiacritics
	}
	if disk.ShowSuprasegmentals != nil {
		s.visibility[model.CategorySuprasegmentals] = *disk.ShowSuprasegmentals
	}
	if isPermutation(disk.CategoryOrder) {
		s.order = append([]string(nil), disk.CategoryOrder...)
	}
	return nil
}

// isPermutation reports whether names contains every built-in category
// name exactly once and nothing else.
func isPermutation(names []string) bool {
	canonical := model.CategoryNames()
	if len(names) != len(canonical) {
		return false
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := model.CategoryByName(n); !ok || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

// Visible reports the visibility flag for a category name. Unknown
// names report false.
func (s *Store) Visible(name string) bool {
	return s.visibility[name]
}

// Order returns a copy of the current display order.
func (s *Store) Order() []string {
	return append([]string(nil), s.order...)
}

// SetVisibility updates the flag, persists, and requests a re-render.
// The in-memory state is updated even when persistence fails.
func (s *Store) SetVisibility(name string, visible bool) error {
	if _, ok := model.CategoryByName(name); !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	s.visibility[name] = visible
	err := s.save()
	s.notify()
	return err
}

// Reorder moves a category to newIndex (clamped), preserving the
// relative order of all other entries, then persists and re-renders.
// A move to the current index is a no-op but still persists.
func (s *Store) Reorder(name string, newIndex int) error {
	cur := -1
	for i, n := range s.order {
		if n == name {
			cur = i
			break
		}
	}
	if cur == -1 {
		return fmt.Errorf("unknown category %q", name)
	}

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(s.order)-1 {
		newIndex = len(s.order) - 1
	}

	if newIndex != cur {
		s.order = append(s.order[:cur], s.order[cur+1:]...)
		s.order = append(s.order[:newIndex], append([]string{name}, s.order[newIndex:]...)...)
	}

	err := s.save()
	s.notify()
	return err
}

// RenderPlan returns the visible categories in display order. Hidden
// categories are omitted entirely.
func (s *Store) RenderPlan() []model.Category {
	plan := make([]model.Category, 0, len(s.order))
	for _, name := range s.order {
		if !s.visibility[name] {
			continue
		}
		if c, ok := model.CategoryByName(name); ok {
			plan = append(plan, c)
		}
	}
	return plan
}

func (s *Store) save() error {
	data, err := s.JSON()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return s.storage.SaveData(data)
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// JSON returns the effective configuration as the persisted shape,
// used by the --json flag.
func (s *Store) JSON() ([]byte, error) {
	v := func(name string) *bool {
		b := s.visibility[name]
		return &b
	}
	disk := diskConfig{
		ShowVowels:          v(model.CategoryVowels),
		ShowConsonants:      v(model.CategoryConsonants),
		ShowDiacritics:      v(model.CategoryDiacritics),
		ShowSuprasegmentals: v(model.CategorySuprasegmentals),
		CategoryOrder:       s.order,
	}
	return json.MarshalIndent(disk, "", "  ")
}
