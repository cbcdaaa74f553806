package home

import (
	"fmt"
	"strings"

	"scaffolding/internal/domain"
	domaintypes "scaffolding/internal/domain/types"
)

// LoadingMarker is drawn in place of an axis that is still Loading.
const LoadingMarker = "..."

// Styler decorates the plain text pieces of the screen. The field type
// matches lipgloss.Style.Render so styles can be plugged in directly.
type Styler struct {
	Loading func(strs ...string) string
	Record  func(strs ...string) string
	Title   func(strs ...string) string
}

func identity(strs ...string) string { return strings.Join(strs, " ") }

func (st Styler) orDefault() Styler {
	if st.Loading == nil {
		st.Loading = identity
	}
	if st.Record == nil {
		st.Record = identity
	}
	if st.Title == nil {
		st.Title = identity
	}
	return st
}

// Render draws s as plain text: release list first, greeting second.
// An Error axis draws nothing; its message belongs to the notifier.
func Render(s domain.HomeState) string {
	return RenderStyled(s, Styler{}, LoadingMarker)
}

// RenderStyled is Render with decorations and a custom loading indicator.
func RenderStyled(s domain.HomeState, st Styler, loading string) string {
	st = st.orDefault()
	var b strings.Builder

	b.WriteString(domaintypes.Match(s.Records,
		func() string { return st.Loading(loading) + "\n" },
		func(recs []domain.Record) string {
			var lb strings.Builder
			for _, r := range recs {
				lb.WriteString(st.Record(FormatRecord(r)))
				lb.WriteByte('\n')
			}
			return lb.String()
		},
		func(string) string { return "" },
	))

	b.WriteString(domaintypes.Match(s.Greeting,
		func() string { return st.Loading(loading) + "\n" },
		func(msg string) string { return st.Title(greeting(msg)) + "\n" },
		func(string) string { return "" },
	))

	return b.String()
}

// FormatRecord returns the list line for r.
func FormatRecord(r domain.Record) string {
	return fmt.Sprintf("Android: %s - Version: %s", r.Name, r.Version)
}

func greeting(name string) string { return "Hello " + name + "!" }
