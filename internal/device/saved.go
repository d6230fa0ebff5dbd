package device

import "slices"

func (s *Store) SavedIDs() ([]string, error) {
	return s.readIDs(SavedFoodsKey)
}

func (s *Store) IsSaved(id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	ids, err := s.SavedIDs()
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// ToggleSaved removes id when saved and appends it otherwise. It returns
// whether id is saved afterwards.
func (s *Store) ToggleSaved(id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	ids, err := s.SavedIDs()
	if err != nil {
		return false, err
	}

	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
	}

	if err := s.writeJSON(SavedFoodsKey, ids); err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

func (s *Store) SetSaved(id string, saved bool) error {
	ids, err := s.SavedIDs()
	if err != nil {
		return err
	}

	out := make([]string, 0, len(ids)+1)
	for _, existing := range ids {
		if existing != id && !slices.Contains(out, existing) {
			out = append(out, existing)
		}
	}
	if saved {
		out = append(out, id)
	}

	return s.writeJSON(SavedFoodsKey, out)
}
