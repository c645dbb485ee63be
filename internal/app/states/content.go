package states

// contentFadeIn is how long the placeholder card takes to appear, in seconds.
const contentFadeIn = 0.35

// ContentState is the placeholder destination view.
type ContentState struct {
	deps    Deps
	elapsed float64
}

// NewContentState creates the content view.
func NewContentState(deps Deps) *ContentState {
	return &ContentState{deps: deps}
}

// Name implements State.
func (s *ContentState) Name() string { return "content" }

// Enter implements State.
func (s *ContentState) Enter() error {
	s.elapsed = 0
	return nil
}

// Exit implements State.
func (s *ContentState) Exit() error {
	return nil
}

// Update advances the fade-in.
func (s *ContentState) Update(dt float64) error {
	s.elapsed += dt
	return nil
}

// Alpha returns the card opacity.
func (s *ContentState) Alpha() float32 {
	a := s.elapsed / contentFadeIn
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return float32(a)
}

// Render draws the card.
func (s *ContentState) Render() error {
	if s.deps.Card != nil {
		s.deps.Card.DrawCard(s.Alpha())
	}
	return nil
}

// HandleAction returns to the hero on ActionBack.
func (s *ContentState) HandleAction(a Action) error {
	if a == ActionBack {
		s.deps.Manager.Change(NewHeroState(s.deps))
	}
	return nil
}
