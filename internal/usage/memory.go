package usage

import "errors"

// MemoryPersistence is an in-memory Persistence double for tests.
type MemoryPersistence struct {
	Total    int64
	LoadErr  error
	SaveErr  error
	SaveHits int
}

func (m *MemoryPersistence) Load() (int64, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return m.Total, nil
}

func (m *MemoryPersistence) Save(total int64) error {
	m.SaveHits++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Total = total
	return nil
}

// ErrSaveFailed can be assigned to SaveErr to simulate storage failure.
var ErrSaveFailed = errors.New("simulated save failure")
