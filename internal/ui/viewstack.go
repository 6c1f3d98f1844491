package ui

// ViewStack manages a stack of screens for navigation (push/pop).
// The bottom entry is the home screen once the splash has gone.
type ViewStack struct {
	Stack []ScreenView
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v ScreenView) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() ScreenView {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() ScreenView {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Replace swaps the top view for v and returns the old one (nil if empty).
func (s *ViewStack) Replace(v ScreenView) ScreenView {
	old := s.Pop()
	s.Push(v)
	return old
}

// SetTop stores the result of the top view's Update.
func (s *ViewStack) SetTop(v ScreenView) {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Unwind pops down to the bottom view and returns what was removed, top first.
func (s *ViewStack) Unwind() []ScreenView {
	var popped []ScreenView
	for len(s.Stack) > 1 {
		popped = append(popped, s.Pop())
	}
	return popped
}

// Current returns the screen of the top view, or ScreenNone.
func (s *ViewStack) Current() Screen {
	if top := s.Peek(); top != nil {
		return top.Screen()
	}
	return ScreenNone
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
