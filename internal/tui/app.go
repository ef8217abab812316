package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/protlab/ssbrowse/internal/browser"
	"github.com/protlab/ssbrowse/internal/config"
	"github.com/protlab/ssbrowse/internal/database/repository"
	"github.com/protlab/ssbrowse/internal/render"
	"github.com/protlab/ssbrowse/internal/service"
)

const sidebarWidth = 34

// Repos bundles the read-side repositories the browser needs.
type Repos struct {
	Structures *repository.StructureRepo
	Disulfides *repository.DisulfideRepo
	Stats      *repository.StatsRepo
}

// dbAdapter narrows the repositories to the controller's database interface.
type dbAdapter struct {
	structures *repository.StructureRepo
	disulfides *repository.DisulfideRepo
}

func (a dbAdapter) ListStructureIDs(ctx context.Context) ([]string, error) {
	return a.structures.ListIDs(ctx)
}

func (a dbAdapter) ListBondNames(ctx context.Context, structureID string) ([]string, error) {
	return a.disulfides.ListNamesFor(ctx, structureID)
}

func (a dbAdapter) GetBond(ctx context.Context, name string) (repository.Disulfide, error) {
	return a.disulfides.Get(ctx, name)
}

// regions buffers the presenter text so View can redraw it at any time.
type regions struct {
	title  string
	info   string
	output string
}

func (r *regions) SetTitle(s string)  { r.title = s }
func (r *regions) SetInfo(s string)   { r.info = s }
func (r *regions) SetOutput(s string) { r.output = s }

// App is the terminal front end: a sidebar with the selection controls and a
// main pane with the render surface. All selection changes go through the
// controller, which runs each cascade to completion before Update returns.
type App struct {
	ctx     context.Context
	cfg     config.Config
	repos   Repos
	ctrl    *browser.Controller
	regions *regions
	md      *markdownCache
	styles  styles
	keys    keyMap

	defaultID string
	stats     repository.Stats
	ids       []string
	suggest   *service.Suggester

	search     textinput.Model
	searching  bool
	bondCursor int
	surface    viewport.Model

	status    string
	statusErr bool
	lastErr   error
	width     int
	height    int
	ready     bool
}

func New(ctx context.Context, cfg config.Config, repos Repos, defaultID string) *App {
	theme := browser.ResolveTheme(cfg.SessionArgs())
	state := browser.NewSessionState(theme)
	slot := browser.NewRenderSlot()
	reg := &regions{}
	layout := browser.SurfaceLayout{
		MinHeight: cfg.UI.MinRenderHeight,
		Controls:  true,
	}
	ctrl := browser.NewController(
		dbAdapter{structures: repos.Structures, disulfides: repos.Disulfides},
		render.NewSceneRenderer(),
		slot, reg, state, layout,
	)

	search := textinput.New()
	search.Placeholder = "rcsb id"
	search.CharLimit = 16
	search.Prompt = "/ "

	return &App{
		ctx:       ctx,
		cfg:       cfg,
		repos:     repos,
		ctrl:      ctrl,
		regions:   reg,
		md:        newMarkdownCache(theme, cfg.UI.WordWrap),
		styles:    newStyles(theme),
		keys:      newKeyMap(),
		defaultID: defaultID,
		search:    search,
		surface:   viewport.New(0, cfg.UI.MinRenderHeight),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

type catalogMsg struct {
	stats repository.Stats
	ids   []string
	err   error
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		stats, err := a.repos.Stats.Get(a.ctx)
		if err != nil {
			return catalogMsg{err: err}
		}
		ids, err := a.repos.Structures.ListIDs(a.ctx)
		if err != nil {
			return catalogMsg{err: err}
		}
		return catalogMsg{stats: stats, ids: ids}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case catalogMsg:
		if m.err != nil {
			a.status = "error: " + m.err.Error()
			a.statusErr = true
			return a, nil
		}
		a.stats = m.stats
		a.ids = m.ids
		a.suggest = service.NewSuggester(m.ids)
		a.ready = true
		a.dispatch(browser.StructureSelected{ID: a.defaultID})
		return a, nil

	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := a.ctrl.State()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.search.SetValue("")
		return a, a.search.Focus()
	case key.Matches(m, a.keys.Cycle):
		if !a.ready || len(a.ids) == 0 {
			return a, nil
		}
		a.dispatch(browser.StructureSelected{ID: a.neighborID(m.String() == "right")})
		return a, nil
	case key.Matches(m, a.keys.Single):
		a.dispatch(browser.ViewModeChanged{Single: !st.SingleView()})
		return a, nil
	case key.Matches(m, a.keys.Refresh):
		a.dispatch(browser.RefreshRequested{})
		return a, nil
	}

	switch m.String() {
	case "up", "k", "down", "j":
		names := st.BondNames()
		if len(names) == 0 {
			return a, nil
		}
		next := a.bondCursor
		if m.String() == "up" || m.String() == "k" {
			next--
		} else {
			next++
		}
		if next < 0 || next >= len(names) {
			return a, nil
		}
		a.dispatch(browser.BondSelected{Name: names[next]})
		return a, nil
	case "s":
		a.dispatch(browser.StyleChanged{Style: st.Style().Next()})
		return a, nil
	case "1", "2", "3":
		idx := int(m.String()[0] - '1')
		a.dispatch(browser.StyleChanged{Style: a.styleAt(idx)})
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit) && m.String() == "ctrl+c":
		return a, tea.Quit
	case key.Matches(m, a.keys.Close):
		a.searching = false
		a.search.Blur()
		return a, nil
	case key.Matches(m, a.keys.Enter):
		query := strings.ToLower(strings.TrimSpace(a.search.Value()))
		a.searching = false
		a.search.Blur()
		if query == "" {
			return a, nil
		}
		a.dispatch(browser.StructureSelected{ID: query})
		if a.statusErr && errors.Is(a.lastErr, repository.ErrUnknownStructure) && a.suggest != nil {
			if near, ok := a.suggest.Nearest(query); ok {
				a.status = fmt.Sprintf("unknown structure %q (did you mean %s?)", query, near)
			}
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return a, cmd
}

func (a *App) dispatch(ev browser.Event) {
	err := a.ctrl.Dispatch(a.ctx, ev)
	a.lastErr = err
	if err != nil {
		a.status = err.Error()
		a.statusErr = true
	} else {
		a.status = ""
		a.statusErr = false
	}
	a.syncCursor()
	a.syncSurface()
}

func (a *App) syncCursor() {
	names := a.ctrl.State().BondNames()
	sel := a.ctrl.State().SelectedBond()
	a.bondCursor = 0
	for i, n := range names {
		if n == sel {
			a.bondCursor = i
			return
		}
	}
}

func (a *App) syncSurface() {
	s := a.ctrl.Slot().Current()
	if s == nil {
		a.surface.SetContent("")
		return
	}
	frame := s.Handle.Frame
	if h := lipgloss.Height(frame); h < s.Layout.MinHeight {
		frame += strings.Repeat("\n", s.Layout.MinHeight-h)
	}
	a.surface.SetContent(frame)
	a.surface.GotoTop()
}

func (a *App) neighborID(forward bool) string {
	cur := a.ctrl.State().Structure()
	for i, id := range a.ids {
		if id != cur {
			continue
		}
		if forward {
			return a.ids[(i+1)%len(a.ids)]
		}
		return a.ids[(i-1+len(a.ids))%len(a.ids)]
	}
	return a.ids[0]
}

func (a *App) styleAt(idx int) render.Style {
	all := render.Styles()
	if idx < 0 || idx >= len(all) {
		return all[0]
	}
	return all[idx]
}

func (a *App) resize() {
	mainWidth := a.width - sidebarWidth - 4
	if mainWidth < 20 {
		mainWidth = 20
	}
	a.surface.Width = mainWidth
	h := a.height - 10
	if h < a.cfg.UI.MinRenderHeight {
		h = a.cfg.UI.MinRenderHeight
	}
	a.surface.Height = h
	wrap := mainWidth
	if a.cfg.UI.WordWrap > 0 && a.cfg.UI.WordWrap < wrap {
		wrap = a.cfg.UI.WordWrap
	}
	a.md.SetWrap(wrap)
}

func (a *App) View() string {
	if !a.ready {
		return a.styles.status.Render("loading database...")
	}
	header := a.styles.header.Render(fmt.Sprintf(
		"RCSB Disulfide Browser: %d disulfides, %d structures, v%s",
		a.stats.Disulfides, a.stats.Structures, a.stats.DatasetVersion,
	))
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), a.renderMain())
	status := a.renderStatus()
	footer := a.styles.footer.Render(a.helpLine())
	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (a *App) renderSidebar() string {
	boxes := []string{
		a.renderSelection(),
		a.renderStyleBox(),
		a.renderDBInfo(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (a *App) renderSelection() string {
	st := a.ctrl.State()
	var b strings.Builder
	b.WriteString(a.styles.boxTitle.Render("Structure") + "\n")
	if a.searching {
		b.WriteString(a.search.View() + "\n")
	} else {
		b.WriteString(a.styles.listSel.Render(st.Structure()) + "\n")
	}
	b.WriteString("\n" + a.styles.boxTitle.Render("Disulfides") + "\n")
	names := st.BondNames()
	if len(names) == 0 {
		b.WriteString(a.styles.disabled.Render("(none)"))
	}
	for i, n := range names {
		line := "  " + n
		style := a.styles.listItem
		if n == st.SelectedBond() {
			line = "▶ " + n
			style = a.styles.listSel
		}
		b.WriteString(style.Render(line))
		if i < len(names)-1 {
			b.WriteString("\n")
		}
	}
	return a.styles.box.Width(sidebarWidth).Render(b.String())
}

func (a *App) renderStyleBox() string {
	st := a.ctrl.State()
	var b strings.Builder
	b.WriteString(a.styles.boxTitle.Render("Rendering Styles") + "\n")
	for i, s := range render.Styles() {
		marker := "( )"
		if s == st.Style() {
			marker = "(•)"
		}
		line := fmt.Sprintf("%s %d %s", marker, i+1, s.String())
		if st.StyleEnabled() {
			b.WriteString(a.styles.listItem.Render(line))
		} else {
			b.WriteString(a.styles.disabled.Render(line))
		}
		b.WriteString("\n")
	}
	check := "[ ]"
	if st.SingleView() {
		check = "[x]"
	}
	b.WriteString(a.styles.listItem.Render(check + " Single View"))
	return a.styles.box.Width(sidebarWidth).Render(b.String())
}

func (a *App) renderDBInfo() string {
	var b strings.Builder
	b.WriteString(a.styles.boxTitle.Render("RCSB Database Info") + "\n")
	b.WriteString(a.styles.listItem.Render(fmt.Sprintf("Structures   %d", a.stats.Structures)) + "\n")
	b.WriteString(a.styles.listItem.Render(fmt.Sprintf("Disulfides   %d", a.stats.Disulfides)) + "\n")
	b.WriteString(a.styles.listItem.Render("Dataset      v" + a.stats.DatasetVersion))
	return a.styles.box.Width(sidebarWidth).Render(b.String())
}

func (a *App) renderMain() string {
	parts := []string{}
	if a.regions.title != "" {
		parts = append(parts, strings.TrimRight(a.md.Render(a.regions.title), "\n"))
	}
	parts = append(parts, a.surface.View())
	if a.regions.info != "" {
		parts = append(parts, strings.TrimRight(a.md.Render(a.regions.info), "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderStatus() string {
	text := a.status
	if text == "" {
		text = strings.TrimSpace(stripMarkdown(a.regions.output))
	}
	if a.statusErr {
		return a.styles.statusErr.Render(text)
	}
	return a.styles.status.Render(text)
}

func (a *App) helpLine() string {
	bindings := a.keys.ShortHelp()
	if a.searching {
		bindings = a.keys.SearchHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ·  ")
}

// stripMarkdown flattens the presenter's bold markers for the one-line status.
func stripMarkdown(s string) string {
	return strings.NewReplacer("**", "", "`", "").Replace(s)
}
