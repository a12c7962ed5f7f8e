package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goliatone/go-passchange/pkg/form"
	"github.com/goliatone/go-passchange/pkg/strength"
)

// View implements form.View on top of a line oriented terminal. Field values
// are captured from prompts by the session; regions are printed as they
// change.
type View struct {
	mu    sync.Mutex
	out   io.Writer
	theme Theme

	current string
	newPw   string
	confirm string

	submitEnabled bool
	errors        []string
	result        form.Result
	indicator     strength.Indicator
}

var _ form.View = (*View)(nil)

// NewView writes to out using theme.
func NewView(out io.Writer, theme Theme) *View {
	return &View{out: out, theme: theme, submitEnabled: true}
}

// SetCurrent stores the current password field.
func (v *View) SetCurrent(value string) { v.set(&v.current, value) }

// SetNew stores the new password field.
func (v *View) SetNew(value string) { v.set(&v.newPw, value) }

// SetConfirm stores the confirmation field.
func (v *View) SetConfirm(value string) { v.set(&v.confirm, value) }

func (v *View) set(dst *string, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	*dst = value
}

func (v *View) Current() string { return v.get(&v.current) }
func (v *View) New() string     { return v.get(&v.newPw) }
func (v *View) Confirm() string { return v.get(&v.confirm) }

func (v *View) get(src *string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return *src
}

// Reset clears every field.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current, v.newPw, v.confirm = "", "", ""
}

// ShowErrors prints one bulleted line per violation.
func (v *View) ShowErrors(messages []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append([]string(nil), messages...)
	for _, msg := range messages {
		v.printf("%s%s%s\n", v.theme.ErrorPrefix, v.theme.BulletPrefix, msg)
	}
}

// ClearErrors forgets the previous violations.
func (v *View) ClearErrors() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = nil
}

// ShowResult prints the submission result.
func (v *View) ShowResult(result form.Result) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = result
	prefix := v.theme.InfoPrefix
	if result.Tone == form.ToneError {
		prefix = v.theme.ErrorPrefix
	}
	v.printf("%s%s\n", prefix, result.Text)
}

// ClearResult forgets the previous result.
func (v *View) ClearResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = form.Result{}
}

// ShowStrength prints the meter as a fixed width bar followed by the caption.
func (v *View) ShowStrength(ind strength.Indicator) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.indicator = ind
	v.printf("%s%s\n", v.theme.InfoPrefix, RenderBar(ind, v.theme))
}

// SetSubmitEnabled tracks whether a submission may start.
func (v *View) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitEnabled = enabled
}

// SubmitEnabled reports the submit affordance state.
func (v *View) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitEnabled
}

// Errors returns the violations currently displayed.
func (v *View) Errors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.errors...)
}

// Result returns the result currently displayed.
func (v *View) Result() form.Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Indicator returns the last indicator shown.
func (v *View) Indicator() strength.Indicator {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.indicator
}

func (v *View) printf(format string, args ...any) {
	if v.out == nil {
		return
	}
	_, _ = fmt.Fprintf(v.out, format, args...)
}

// RenderBar draws ind as "[#####...............] Strength: Weak".
func RenderBar(ind strength.Indicator, theme Theme) string {
	width := theme.BarWidth
	if width <= 0 {
		width = DefaultTheme().BarWidth
	}
	fill, empty := theme.BarFill, theme.BarEmpty
	if fill == "" {
		fill = "#"
	}
	if empty == "" {
		empty = "."
	}

	pct := min(max(ind.Fill, 0), strength.MaxScore)
	filled := pct * width / strength.MaxScore
	return fmt.Sprintf("[%s%s] %s",
		strings.Repeat(fill, filled),
		strings.Repeat(empty, width-filled),
		ind.Text,
	)
}
