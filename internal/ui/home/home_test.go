package home_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolding/internal/domain"
	domaintypes "scaffolding/internal/domain/types"
	svchome "scaffolding/internal/services/home"
	"scaffolding/internal/ui/home"
)

func settle(t *testing.T, vm *svchome.ViewModel) {
	t.Helper()
	select {
	case <-vm.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("view model did not settle")
	}
}

func TestRender_Loading(t *testing.T) {
	out := home.Render(domaintypes.InitialHomeState())
	assert.Equal(t, home.LoadingMarker+"\n"+home.LoadingMarker+"\n", out)
}

func TestRender_Success(t *testing.T) {
	s := domaintypes.InitialHomeState().
		WithGreeting(domaintypes.Success("Android")).
		WithRecords(domaintypes.Success(domaintypes.AndroidReleases()))

	lines := strings.Split(strings.TrimSpace(home.Render(s)), "\n")
	require.Len(t, lines, 19)
	assert.Equal(t, "Android: Cupcake - Version: 1.5", lines[0])
	assert.Equal(t, "Android: Android 13 - Version: 13", lines[17])
	assert.Equal(t, "Hello Android!", lines[18])
}

func TestRender_ErrorAxesDrawNothing(t *testing.T) {
	s := domaintypes.InitialHomeState().
		WithGreeting(domaintypes.Failed[string]("a")).
		WithRecords(domaintypes.Failed[[]domain.Record]("b"))
	assert.Empty(t, home.Render(s))
}

func TestWatchErrors_NotifiesOncePerAxis(t *testing.T) {
	start := make(chan struct{})
	greeting := func(ctx context.Context) (string, error) {
		<-start
		return "", errors.New("boom-1")
	}
	vm := svchome.New(context.Background(), greeting, svchome.Fail[[]domain.Record](errors.New("boom-2")))

	var (
		mu   sync.Mutex
		msgs []string
	)
	cancel := home.WatchErrors(vm, func(m string) {
		mu.Lock()
		msgs = append(msgs, m)
		mu.Unlock()
	})
	defer cancel()
	close(start)
	settle(t, vm)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"boom-1", "boom-2"}, msgs)
}

func TestWatchErrors_AlreadySettled(t *testing.T) {
	vm := svchome.New(context.Background(), svchome.FailingGreeting, svchome.Succeed[[]domain.Record](nil))
	settle(t, vm)

	var msgs []string
	cancel := home.WatchErrors(vm, func(m string) { msgs = append(msgs, m) })
	defer cancel()
	assert.Equal(t, []string{svchome.ErrGreetingFailed.Error()}, msgs)
}

func TestWatchErrors_NotifyNeverOverlaps(t *testing.T) {
	for i := 0; i < 50; i++ {
		vm := svchome.New(context.Background(),
			svchome.Fail[string](errors.New("boom-1")),
			svchome.Fail[[]domain.Record](errors.New("boom-2")),
			svchome.WithLaunch(svchome.LaunchParallel),
		)

		var (
			inflight atomic.Int32
			overlap  atomic.Bool
			calls    atomic.Int32
		)
		cancel := home.WatchErrors(vm, func(string) {
			if inflight.Add(1) > 1 {
				overlap.Store(true)
			}
			time.Sleep(time.Millisecond)
			calls.Add(1)
			inflight.Add(-1)
		})
		settle(t, vm)
		cancel()

		require.False(t, overlap.Load(), "notify calls overlapped")
		require.Equal(t, int32(2), calls.Load())
	}
}

func TestRenderStyled_DecoratesEveryPiece(t *testing.T) {
	wrap := func(tag string) func(...string) string {
		return func(strs ...string) string { return "<" + tag + ":" + strings.Join(strs, "") + ">" }
	}
	st := home.Styler{Loading: wrap("l"), Record: wrap("r"), Title: wrap("t")}

	assert.Equal(t, "<l:*>\n<l:*>\n", home.RenderStyled(domaintypes.InitialHomeState(), st, "*"))

	s := domaintypes.InitialHomeState().
		WithGreeting(domaintypes.Success("x")).
		WithRecords(domaintypes.Success([]domain.Record{{Name: "Pie", Version: "9"}}))
	assert.Equal(t, "<r:Android: Pie - Version: 9>\n<t:Hello x!>\n", home.RenderStyled(s, st, "*"))
}

func TestModel_LoadingViewShowsSpinner(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	greeting := func(ctx context.Context) (string, error) {
		<-release
		return "", nil
	}
	records := func(ctx context.Context) ([]domain.Record, error) {
		<-release
		return nil, nil
	}
	vm := svchome.New(context.Background(), greeting, records, svchome.WithLaunch(svchome.LaunchParallel))
	m, closeFn := home.NewModel(vm)
	defer closeFn()

	view := m.View()
	assert.NotContains(t, view, home.LoadingMarker)
	assert.Contains(t, view, "q: quit")
	assert.GreaterOrEqual(t, strings.Count(view, "\n"), 3)
}

func TestModel_Update(t *testing.T) {
	start := make(chan struct{})
	greeting := func(ctx context.Context) (string, error) {
		<-start
		return "hi", nil
	}
	vm := svchome.New(context.Background(), greeting, svchome.Succeed[[]domain.Record](nil))
	m, closeFn := home.NewModel(vm)
	defer closeFn()
	close(start)
	settle(t, vm)

	assert.Equal(t, domain.StatusLoading, m.State().Greeting.Status())

	next, _ := m.Update(home.StateMsg{State: vm.State()})
	m = next.(home.Model)
	assert.Equal(t, domain.StatusSuccess, m.State().Greeting.Status())
	assert.Contains(t, m.View(), "Hello hi!")

	next, _ = m.Update(home.NoticeMsg{Message: "boom"})
	m = next.(home.Model)
	assert.Equal(t, "boom", m.Notice())
	assert.Contains(t, m.View(), "boom")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
