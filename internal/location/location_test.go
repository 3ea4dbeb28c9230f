package location

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "singleton", New("#singleton").Fragment())
	require.Equal(t, "singleton", New("  singleton ").Fragment())
	require.Equal(t, "", New("").Fragment())
	require.Equal(t, "", New("#").Fragment())
}

func TestFragmentOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "singleton", FragmentOf("https://patterns.example/#singleton"))
	require.Equal(t, "factory-method", FragmentOf("/?hl=en#factory-method"))
	require.Equal(t, "", FragmentOf("https://patterns.example/"))
	require.Equal(t, "", FragmentOf("://bad url"))
	require.Equal(t, "observer", FromURL("http://localhost:8080/#observer").Fragment())
}

func TestHref(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", New("").Href())
	require.Equal(t, "/#builder", New("builder").Href())
}

func TestSetFragmentNotifiesOnChangeOnly(t *testing.T) {
	t.Parallel()

	loc := New("")
	calls := 0
	unsubscribe := loc.Subscribe(func() { calls++ })

	loc.SetFragment("singleton")
	require.Equal(t, 1, calls)
	require.Equal(t, "singleton", loc.Fragment())

	loc.SetFragment("#singleton")
	require.Equal(t, 1, calls, "unchanged fragment must not notify")

	unsubscribe()
	loc.SetFragment("adapter")
	require.Equal(t, 1, calls)
	require.Equal(t, "adapter", loc.Fragment())
}

func TestHistoryBackForward(t *testing.T) {
	t.Parallel()

	loc := New("")
	var seen []string
	loc.Subscribe(func() { seen = append(seen, loc.Fragment()) })

	loc.SetFragment("singleton")
	loc.SetFragment("observer")
	require.True(t, loc.Back())
	require.Equal(t, "singleton", loc.Fragment())
	require.True(t, loc.Back())
	require.Equal(t, "", loc.Fragment())
	require.False(t, loc.Back())

	require.True(t, loc.Forward())
	require.Equal(t, "singleton", loc.Fragment())

	// a new write drops the forward entries
	loc.SetFragment("builder")
	require.False(t, loc.Forward())

	require.Equal(t, []string{"singleton", "observer", "singleton", "", "singleton", "builder"}, seen)
}

func TestReentrantWrite(t *testing.T) {
	t.Parallel()

	loc := New("")
	var depth int
	var depths []int
	var seen []string
	loc.Subscribe(func() {
		depth++
		defer func() { depth-- }()
		depths = append(depths, depth)
		seen = append(seen, loc.Fragment())
		if loc.Fragment() == "old-id" {
			loc.SetFragment("new-id")
		}
	})

	// the listener's own write runs it again before the outer call returns
	loc.SetFragment("old-id")
	require.Equal(t, "new-id", loc.Fragment())
	require.Equal(t, []int{1, 2}, depths)
	require.Equal(t, []string{"old-id", "new-id"}, seen)
	require.Zero(t, depth)
}

func TestListenersRunInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	loc := New("")
	var order []string
	loc.Subscribe(func() { order = append(order, "first") })
	loc.Subscribe(func() { order = append(order, "second") })

	loc.SetFragment("x")
	require.Equal(t, []string{"first", "second"}, order)
}
