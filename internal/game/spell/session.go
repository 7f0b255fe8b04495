package spell

// Session reports the local character state the stacking resolver depends on.
// Implementations are owned by the host; spellcore only reads them.
type Session interface {
	// InGame returns true while the character is in active play.
	InGame() bool
	// Zoning returns true during a zone transition.
	Zoning() bool
	// CharacterLevel returns the level of the active character, false when none is active.
	CharacterLevel() (int, bool)
}

// StaticSession is a fixed Session for tools and tests.
type StaticSession struct {
	Level     int  // 0 = no active character
	Playing   bool
	InTransit bool
}

// NewStaticSession returns an in-game session for a character of the given level.
func NewStaticSession(level int) StaticSession {
	return StaticSession{Level: level, Playing: true}
}

func (s StaticSession) InGame() bool { return s.Playing }
func (s StaticSession) Zoning() bool { return s.InTransit }

func (s StaticSession) CharacterLevel() (int, bool) {
	if s.Level <= 0 {
		return 0, false
	}
	return s.Level, true
}

// canEvaluate reports whether stacking can be evaluated against sess.
func canEvaluate(sess Session) bool {
	if sess == nil {
		return false
	}
	if _, ok := sess.CharacterLevel(); !ok {
		return false
	}
	return sess.InGame() && !sess.Zoning()
}
