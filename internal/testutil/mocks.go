package testutil

import (
	"sync"

	"github.com/udisondev/spellcore/internal/data"
)

// MockSession — изменяемое состояние персонажа для тестов резолвера.
// Thread-safe.
type MockSession struct {
	mu     sync.RWMutex
	level  int
	inGame bool
	zoning bool
}

// NewMockSession создаёт сессию персонажа level в игре.
func NewMockSession(level int) *MockSession {
	return &MockSession{level: level, inGame: true}
}

func (m *MockSession) InGame() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inGame
}

func (m *MockSession) Zoning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.zoning
}

func (m *MockSession) CharacterLevel() (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level, m.level > 0
}

// SetZoning переключает состояние перехода между зонами.
func (m *MockSession) SetZoning(zoning bool) {
	m.mu.Lock()
	m.zoning = zoning
	m.mu.Unlock()
}

// SetInGame переключает состояние активной игры.
func (m *MockSession) SetInGame(inGame bool) {
	m.mu.Lock()
	m.inGame = inGame
	m.mu.Unlock()
}

// MockLookups — in-memory спеллы и строковые ресурсы для тестов описаний.
type MockLookups struct {
	Spells  SpellMap
	Strings map[int]map[int]string // category -> id -> text
}

// NewMockLookups создаёт lookups над spells без строковых ресурсов.
func NewMockLookups(spells ...*data.Spell) *MockLookups {
	return &MockLookups{
		Spells:  NewSpellMap(spells...),
		Strings: make(map[int]map[int]string),
	}
}

// AddString регистрирует строковый ресурс.
func (m *MockLookups) AddString(category, id int, text string) {
	if m.Strings[category] == nil {
		m.Strings[category] = make(map[int]string)
	}
	m.Strings[category][id] = text
}

func (m *MockLookups) Spell(id int) *data.Spell {
	return m.Spells.Spell(id)
}

func (m *MockLookups) StringResource(id, category int) (string, bool) {
	s, ok := m.Strings[category][id]
	return s, ok
}
