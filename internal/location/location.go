// Package location models the address bar's fragment identifier: the only
// bookmarkable piece of view state.
package location

import (
	"net/url"
	"slices"
	"strings"
)

// Location holds the current fragment, a history of visited fragments, and
// the listeners to notify when the fragment changes. Listeners run
// synchronously inside the call that changed the fragment, so a listener
// that itself writes the fragment re-enters. A Location is owned by a single
// controller and is not safe for concurrent use.
type Location struct {
	history   []string
	pos       int
	listeners map[int]func()
	nextID    int
}

// New returns a location whose current fragment is initial.
func New(initial string) *Location {
	return &Location{
		history:   []string{Normalize(initial)},
		listeners: map[int]func(){},
	}
}

// FromURL builds a location from an absolute or relative URL, taking its
// fragment. Unparseable URLs yield an empty fragment.
func FromURL(raw string) *Location {
	return New(FragmentOf(raw))
}

// FragmentOf extracts the fragment of raw, or "" when it has none or cannot be parsed.
func FragmentOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Fragment
}

// Normalize strips a leading "#" and surrounding whitespace.
func Normalize(fragment string) string {
	return strings.TrimPrefix(strings.TrimSpace(fragment), "#")
}

// Fragment returns the current fragment without the leading "#".
func (l *Location) Fragment() string {
	return l.history[l.pos]
}

// Href renders the current location relative to the site root, e.g. "/#singleton".
func (l *Location) Href() string {
	if f := l.Fragment(); f != "" {
		return "/#" + url.PathEscape(f)
	}
	return "/"
}

// SetFragment writes a new fragment, pushing a history entry. Listeners are
// notified only when the value changes.
func (l *Location) SetFragment(fragment string) {
	fragment = Normalize(fragment)
	if fragment == l.Fragment() {
		return
	}
	l.history = append(l.history[:l.pos+1], fragment)
	l.pos++
	l.notify()
}

// Back moves one step back in history. It reports false at the oldest entry.
func (l *Location) Back() bool {
	if l.pos == 0 {
		return false
	}
	before := l.Fragment()
	l.pos--
	if l.Fragment() != before {
		l.notify()
	}
	return true
}

// Forward moves one step forward in history. It reports false at the newest entry.
func (l *Location) Forward() bool {
	if l.pos+1 >= len(l.history) {
		return false
	}
	before := l.Fragment()
	l.pos++
	if l.Fragment() != before {
		l.notify()
	}
	return true
}

// Subscribe registers fn to run after every fragment change and returns a
// function that removes it.
func (l *Location) Subscribe(fn func()) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() { delete(l.listeners, id) }
}

func (l *Location) notify() {
	ids := make([]int, 0, len(l.listeners))
	for id := range l.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := l.listeners[id]; ok {
			fn()
		}
	}
}
