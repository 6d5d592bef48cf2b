// Copyright (c) 2026 lantern
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package lantern

import "github.com/charmbracelet/lipgloss"

// Styles defines the visual appearance of console log lines.
//
// It leverages the lipgloss library to provide terminal styling selected by
// severity. The whole rendered line is wrapped in the level's style, with the
// color reset appended before the trailing newline.
type Styles struct {
	// Levels maps each severity to the style applied to its console lines.
	Levels map[Level]lipgloss.Style
}

// DefaultStyles initializes the standard severity color scheme: blue debug,
// green info, yellow warnings, red errors, and magenta criticals.
func DefaultStyles() *Styles {
	return &Styles{
		Levels: map[Level]lipgloss.Style{
			DebugLevel:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			InfoLevel:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			WarningLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			ErrorLevel:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			CriticalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		},
	}
}

var _defaultStyles = DefaultStyles()

// SetDefaultStyles overrides the global styles used by colorized formatting.
//
// You can use this to apply a custom, application wide theme to console logs.
func SetDefaultStyles(s *Styles) {
	if s == nil {
		return
	}
	_defaultStyles = s
}
