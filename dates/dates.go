package dates

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Layout is the canonical date form stored on records and shown to users.
const Layout = "2006-01-02"

// Resolver turns free-form text into a canonical YYYY-MM-DD date.
// It reports false when the text does not contain a recognizable date.
type Resolver interface {
	Resolve(text string) (string, bool)
}

// WhenResolver resolves dates with the olebedev/when natural-language
// parser, using the English and common rule sets.
type WhenResolver struct {
	parser *when.Parser
	now    func() time.Time
}

func NewWhenResolver() *WhenResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &WhenResolver{
		parser: w,
		now:    time.Now,
	}
}

func (r *WhenResolver) Resolve(text string) (string, bool) {
	result, err := r.parser.Parse(text, r.now())
	if err != nil || result == nil {
		return "", false
	}
	return result.Time.Format(Layout), true
}

// Today formats the current date in the canonical layout.
func Today(now time.Time) string {
	return now.Format(Layout)
}

// Tomorrow formats the day after now in the canonical layout.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(Layout)
}
