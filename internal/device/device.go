package device

// DeviceID returns the id of this device, creating and persisting one on
// first use.
func (s *Store) DeviceID() (string, error) {
	id, ok, err := s.kv.Get(DeviceIDKey)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}

	id = "dev_" + s.random() + base36(s.now().UnixMilli())
	if err := s.kv.Set(DeviceIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
