// Package testbed holds end-to-end scenarios driven purely through the
// public API, the way an application wires the library.
package testbed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mvpbinding "github.com/wippyai/mvp-binding"
	"github.com/wippyai/mvp-binding/binder"
	"github.com/wippyai/mvp-binding/binding"
	"github.com/wippyai/mvp-binding/capability"
	"github.com/wippyai/mvp-binding/composite"
	"github.com/wippyai/mvp-binding/factory"
	"github.com/wippyai/mvp-binding/messages"
)

// Capabilities.

type searchView interface {
	ShowResults(results []string)
}

type bannerView interface {
	ShowBanner(text string)
}

// Views.

type searchBox struct {
	results []string
}

func (s *searchBox) ShowResults(results []string) { s.results = results }

type banner struct {
	name  string
	shown []string
}

func (b *banner) ShowBanner(text string) { b.shown = append(b.shown, b.name+"/"+text) }

// Messages.

type searchPerformed struct {
	query string
}

// Presenters.

type searchLogic interface {
	mvpbinding.Presenter
	Search(query string)
}

type bannerLogic interface {
	mvpbinding.Presenter
	Announce(text string)
}

type searchPresenter struct {
	view searchView
	mc   mvpbinding.MessageCoordinator
}

func (p *searchPresenter) SetContext(context.Context) {}

func (p *searchPresenter) SetCoordinator(mc mvpbinding.MessageCoordinator) { p.mc = mc }

func (p *searchPresenter) DetachView() { p.view = nil }

func (p *searchPresenter) Search(query string) {
	p.view.ShowResults([]string{query + "-1", query + "-2"})
	p.mc.Publish(searchPerformed{query: query})
}

type bannerPresenter struct {
	view bannerView
}

func (p *bannerPresenter) SetContext(context.Context) {}

func (p *bannerPresenter) SetCoordinator(mc mvpbinding.MessageCoordinator) {
	messages.Subscribe(mc, func(m searchPerformed) {
		p.Announce("searched: " + m.query)
	})
}

func (p *bannerPresenter) DetachView() { p.view = nil }

func (p *bannerPresenter) Announce(text string) { p.view.ShowBanner(text) }

// bannerFanout is the composite adapter for bannerView.
type bannerFanout []bannerView

func (f bannerFanout) ShowBanner(text string) {
	for _, v := range f {
		v.ShowBanner(text)
	}
}

// Host.

type searchPage struct{}

func (*searchPage) PresenterBindings() []binding.Descriptor {
	return []binding.Descriptor{
		binding.Of[searchLogic, searchView](binding.ModeDefault),
		binding.Of[bannerLogic, bannerView](binding.ModeShared),
	}
}

func wire(t *testing.T) {
	t.Helper()
	binding.ResetCache()
	capability.Reset()
	composite.Reset()
	factory.Reset()
	factory.ResetTable()

	factory.RegisterConstructor[searchLogic](factory.ConstructorFor(func(v searchView) mvpbinding.Presenter {
		return &searchPresenter{view: v}
	}))
	factory.RegisterConstructor[bannerLogic](factory.ConstructorFor(func(v bannerView) mvpbinding.Presenter {
		return &bannerPresenter{view: v}
	}))
	composite.Register(func(children []bannerView) bannerView {
		return bannerFanout(children)
	})
}

func TestScenario_DefaultModeTwoViews(t *testing.T) {
	wire(t)

	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), &searchPage{})
	require.NoError(t, err)

	require.NoError(t, b.RegisterView(&searchBox{}))
	require.NoError(t, b.RegisterView(&searchBox{}))

	created, err := b.PerformBinding()
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, p := range created {
		assert.Implements(t, (*searchLogic)(nil), p)
	}
}

func TestScenario_SharedModeThreeViews(t *testing.T) {
	wire(t)

	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), &searchPage{})
	require.NoError(t, err)

	banners := []*banner{{name: "top"}, {name: "side"}, {name: "footer"}}
	for _, v := range banners {
		require.NoError(t, b.RegisterView(v))
	}

	created, err := b.PerformBinding()
	require.NoError(t, err)
	require.Len(t, created, 1, "shared mode yields exactly one presenter")

	created[0].(bannerLogic).Announce("maintenance at noon")
	for _, v := range banners {
		assert.Equal(t, []string{v.name + "/maintenance at noon"}, v.shown,
			"every wrapped view receives the fan-out")
	}
}

func TestScenario_CrossPresenterMessaging(t *testing.T) {
	wire(t)

	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), &searchPage{})
	require.NoError(t, err)

	box := &searchBox{}
	top := &banner{name: "top"}
	side := &banner{name: "side"}
	require.NoError(t, b.RegisterView(box))
	require.NoError(t, b.RegisterView(top))
	require.NoError(t, b.RegisterView(side))

	created, err := b.PerformBinding()
	require.NoError(t, err)
	require.Len(t, created, 2, "one search presenter plus one shared banner presenter")

	var search searchLogic
	for _, p := range created {
		if s, ok := p.(searchLogic); ok {
			search = s
		}
	}
	require.NotNil(t, search)

	search.Search("mvp")

	assert.Equal(t, []string{"mvp-1", "mvp-2"}, box.results)
	assert.Equal(t, []string{"top/searched: mvp"}, top.shown,
		"the search message reaches the shared banner presenter")
	assert.Equal(t, []string{"side/searched: mvp"}, side.shown)
}

func TestScenario_ManifestDrivenBindings(t *testing.T) {
	wire(t)
	binding.ResetNames()

	type manifestPage struct{}
	binding.RegisterHostName[*manifestPage]("search_page")
	binding.RegisterPresenterName[searchLogic]("search")
	binding.RegisterViewName[searchView]("search_box")

	src := `
host "search_page" {
  binding {
    presenter = "search"
    view      = "search_box"
    mode      = default
  }
}
`
	require.NoError(t, binding.ParseManifest([]byte(src), "page.hcl"))

	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), &manifestPage{})
	require.NoError(t, err)
	require.NoError(t, b.RegisterView(&searchBox{}))

	created, err := b.PerformBinding()
	require.NoError(t, err)
	require.Len(t, created, 1)
}

func TestScenario_FullLifecycle(t *testing.T) {
	wire(t)

	mc := messages.NewCoordinator()
	b, err := binder.New(mc, binder.DefaultOptions(), &searchPage{})
	require.NoError(t, err)

	var hookCount int
	b.OnPresenterCreated(func(mvpbinding.Presenter) { hookCount++ })

	require.NoError(t, b.RegisterView(&searchBox{}))
	_, err = b.PerformBinding()
	require.NoError(t, err)
	assert.Equal(t, 1, hookCount)

	// A view that shows up late binds without another PerformBinding call.
	require.NoError(t, b.RegisterView(&searchBox{}))
	assert.Equal(t, 2, hookCount)
	assert.Len(t, b.Presenters(), 2)

	require.NoError(t, b.Release())
	assert.True(t, mc.Closed())
	assert.Empty(t, b.Presenters())
	assert.Equal(t, "released", b.State())
}
