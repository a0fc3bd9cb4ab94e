package builder

import (
	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
)

// Session holds the build of one configurator page. It starts empty and is
// never persisted. A Session is not safe for concurrent use.
type Session struct {
	catalog *catalog.Catalog
	build   Build
}

func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		catalog: cat,
		build:   Build{DiskIDs: []string{}},
	}
}

// Dispatch applies ev to the session's build and returns the new view.
func (s *Session) Dispatch(ev Event) View {
	s.build = Apply(s.catalog, s.build, ev)
	return s.View()
}

func (s *Session) SelectChassis(id string) View {
	return s.Dispatch(Event{Kind: SelectChassis, ID: id})
}

func (s *Session) SelectCPU(id string) View {
	return s.Dispatch(Event{Kind: SelectCPU, ID: id})
}

func (s *Session) SelectRAM(id string) View {
	return s.Dispatch(Event{Kind: SelectRAM, ID: id})
}

func (s *Session) AddDisk(id string) View {
	return s.Dispatch(Event{Kind: AddDisk, ID: id})
}

func (s *Session) RemoveDisk(index int) View {
	return s.Dispatch(Event{Kind: RemoveDisk, Index: index})
}

// Build returns a copy of the current selection.
func (s *Session) Build() Build {
	return s.build.clone()
}

func (s *Session) View() View {
	return Derive(s.catalog, s.build)
}
