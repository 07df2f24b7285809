package core

// Stack runs several Apps as one. Frames and starts go bottom to top,
// shutdowns top to bottom.
type Stack struct{ list []App }

func NewStack(apps ...App) *Stack { return &Stack{list: apps} }

func (s *Stack) Push(a App) { s.list = append(s.list, a) }

func (s *Stack) Pop() (App, bool) {
	if len(s.list) == 0 {
		return nil, false
	}
	i := len(s.list) - 1
	a := s.list[i]
	s.list = s.list[:i]
	return a, true
}

func (s *Stack) Len() int { return len(s.list) }

func (s *Stack) OnStart(st State) {
	for _, a := range s.list {
		if starter, ok := a.(Starter); ok {
			starter.OnStart(st)
		}
	}
}

func (s *Stack) OnFrame(st State) {
	for _, a := range s.list {
		a.OnFrame(st)
	}
}

func (s *Stack) OnShutdown() {
	for i := len(s.list) - 1; i >= 0; i-- {
		if sd, ok := s.list[i].(Shutdowner); ok {
			sd.OnShutdown()
		}
	}
}
