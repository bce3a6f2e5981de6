package kv

import "strconv"

const (
	backupSuffix   = "_backup"
	backupTsSuffix = "_backup_ts"
)

// CreateBackup copies the current raw value of key to its shadow key along
// with a timestamp, reporting whether a source value existed. Destructive
// bulk operations call this before mutating. An absent source is still a
// success, and any stale shadow keys are cleared so a later restore cannot
// resurrect data from an earlier backup.
func (s *Store) CreateBackup(key string) (existed, ok bool) {
	raw, present := s.GetRaw(key)
	if !present {
		s.Remove(key + backupSuffix)
		s.Remove(key + backupTsSuffix)
		return false, true
	}
	if !s.SetRaw(key+backupSuffix, raw) {
		return true, false
	}
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	return true, s.SetRaw(key+backupTsSuffix, ts)
}

// RestoreFromBackup copies the shadow value back over the live key,
// returning storage to its pre-operation state. Fails silently (false)
// when no backup exists.
func (s *Store) RestoreFromBackup(key string) bool {
	raw, present := s.GetRaw(key + backupSuffix)
	if !present {
		return false
	}
	return s.SetRaw(key, raw)
}

// HasBackup reports whether a shadow copy exists for key.
func (s *Store) HasBackup(key string) bool {
	_, present := s.GetRaw(key + backupSuffix)
	return present
}
