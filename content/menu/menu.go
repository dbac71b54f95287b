package menu

// Item is an entry of the pause menu.
type Item int

const (
	ItemResume Item = iota
	ItemRestart
	ItemQuit
)

func (i Item) String() string {
	switch i {
	case ItemResume:
		return "Resume"
	case ItemRestart:
		return "Restart"
	case ItemQuit:
		return "Quit"
	}
	return "?"
}

// PauseMenu tracks the highlighted entry. Navigation wraps around.
type PauseMenu struct {
	items    []Item
	selected int
}

func NewPauseMenu() *PauseMenu {
	return &PauseMenu{items: []Item{ItemResume, ItemRestart, ItemQuit}}
}

func (m *PauseMenu) Up() {
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
}

func (m *PauseMenu) Down() {
	m.selected = (m.selected + 1) % len(m.items)
}

func (m *PauseMenu) Selected() Item {
	return m.items[m.selected]
}

// Items returns the entries in display order.
func (m *PauseMenu) Items() []Item {
	return m.items
}

func (m *PauseMenu) IsSelected(i Item) bool {
	return m.Selected() == i
}

// Reset highlights the first entry again.
func (m *PauseMenu) Reset() {
	m.selected = 0
}
