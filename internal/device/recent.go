package device

func (s *Store) RecentIDs() ([]string, error) {
	return s.readIDs(RecentFoodsKey)
}

// PushRecent moves id to the front of the recently viewed list.
func (s *Store) PushRecent(id string) error {
	if id == "" {
		return nil
	}

	ids, err := s.RecentIDs()
	if err != nil {
		return err
	}

	out := make([]string, 0, len(ids)+1)
	out = append(out, id)
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}

	return s.writeJSON(RecentFoodsKey, out)
}

func (s *Store) ClearRecent() error {
	return s.kv.Delete(RecentFoodsKey)
}
