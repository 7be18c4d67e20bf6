package calm

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HomeRoute is the route name of the scene picker.
const HomeRoute = "home"

// Route is one entry of the route table.
type Route struct {
	Name  string
	Title string
	New   func() Scene
}

// Router mounts at most one scene at a time on a Host and shows a picker
// when none is mounted.
type Router struct {
	host     *Host
	routes   []Route
	opts     []MountOption
	current  string
	dispose  func()
	home     CallbackHandle
	onChange func(route, title string)
	onUpdate func() error
	onDraw   func(c *Canvas)
}

const (
	menuTop    = 56.0
	menuRow    = 34.0
	menuWidth  = 300.0
	homeButton = 96.0
)

// NewRouter creates a router over routes. opts are applied to every mount.
// The router takes over the host's overlay, chrome handler and update func.
func NewRouter(host *Host, routes []Route, opts ...MountOption) *Router {
	r := &Router{host: host, routes: routes, opts: opts}
	host.SetOverlay(r.drawOverlay)
	host.SetChromeHandler(r.chrome)
	host.SetUpdateFunc(r.update)
	r.showHome()
	return r
}

// OnChange registers a callback fired after every route change.
func (r *Router) OnChange(fn func(route, title string)) {
	r.onChange = fn
}

// OnUpdate registers a callback run after the router's own key handling on
// every Update.
func (r *Router) OnUpdate(fn func() error) {
	r.onUpdate = fn
}

// OnOverlay registers a draw function run after the header and picker, in
// window coordinates.
func (r *Router) OnOverlay(fn func(c *Canvas)) {
	r.onDraw = fn
}

// Current returns the mounted route name, or HomeRoute.
func (r *Router) Current() string {
	if r.current == "" {
		return HomeRoute
	}
	return r.current
}

// Routes returns the route table.
func (r *Router) Routes() []Route { return r.routes }

// Lookup finds a route by name.
func (r *Router) Lookup(name string) (Route, bool) {
	for _, rt := range r.routes {
		if rt.Name == name {
			return rt, true
		}
	}
	return Route{}, false
}

// Navigate switches to the named route. Navigating to the mounted route is a
// no-op; an unknown name or HomeRoute unloads the scene and shows the picker.
func (r *Router) Navigate(name string) {
	rt, ok := r.Lookup(name)
	if !ok {
		if name != HomeRoute {
			r.host.debugWarnf("router: unknown route %q", name)
		}
		if r.current == "" {
			return
		}
		r.unload()
		r.showHome()
		r.changed(HomeRoute, "")
		return
	}
	if rt.Name == r.current {
		return
	}
	r.unload()
	r.hideHome()
	r.dispose = Mount(r.host, rt.New(), r.opts...)
	r.current = rt.Name
	if r.host.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[calm] route: %s\n", rt.Name)
	}
	r.changed(rt.Name, rt.Title)
}

func (r *Router) changed(route, title string) {
	if r.onChange != nil {
		r.onChange(route, title)
	}
}

func (r *Router) unload() {
	if r.dispose != nil {
		r.dispose()
		r.dispose = nil
	}
	r.current = ""
}

func (r *Router) showHome() {
	r.hideHome()
	r.home = r.host.OnPointer(r.menuPointer)
}

func (r *Router) hideHome() {
	r.home.Remove()
	r.home = CallbackHandle{}
}

func (r *Router) menuLeft() float64 {
	return (r.host.Container().Width - menuWidth) / 2
}

// menuIndex maps a container-local point to a route index, or -1.
func (r *Router) menuIndex(x, y float64) int {
	if x < r.menuLeft() || x > r.menuLeft()+menuWidth || y < menuTop {
		return -1
	}
	i := int((y - menuTop) / menuRow)
	if i >= len(r.routes) {
		return -1
	}
	return i
}

func (r *Router) menuPointer(ev PointerEvent) {
	if ev.Kind != PointerUp {
		return
	}
	if i := r.menuIndex(ev.X, ev.Y); i >= 0 {
		r.Navigate(r.routes[i].Name)
	}
}

func (r *Router) chrome(ev PointerEvent) {
	if ev.Kind == PointerDown && ev.X <= homeButton && r.current != "" {
		r.Navigate(HomeRoute)
	}
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

func (r *Router) update() error {
	r.handleKeys()
	if r.onUpdate != nil {
		return r.onUpdate()
	}
	return nil
}

func (r *Router) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.Navigate(HomeRoute)
		return
	}
	if r.current != "" {
		return
	}
	for i, k := range digitKeys {
		if i < len(r.routes) && inpututil.IsKeyJustPressed(k) {
			r.Navigate(r.routes[i].Name)
			return
		}
	}
}

func (r *Router) drawOverlay(c *Canvas) {
	r.drawChrome(c)
	if r.onDraw != nil {
		r.onDraw(c)
	}
}

func (r *Router) drawChrome(c *Canvas) {
	header := r.host.Container().Y
	if header > 0 {
		c.FillRect(0, 0, c.Width(), header, color.NRGBA{20, 22, 30, 230})
		title := "calm"
		if rt, ok := r.Lookup(r.current); ok {
			title = rt.Title
			c.Text("< Home", 10, header/2-6)
		}
		c.TextCentered(title, c.Width()/2, header/2)
	}
	if r.current != "" {
		return
	}
	left := r.menuLeft()
	c.TextCentered("Choose a calm space (1-9, 0)", c.Width()/2, header+menuTop/2)
	for i, rt := range r.routes {
		y := header + menuTop + float64(i)*menuRow
		c.FillRect(left, y+2, menuWidth, menuRow-4, color.NRGBA{255, 255, 255, 24})
		key := (i + 1) % 10
		c.Text(fmt.Sprintf("%d  %s", key, rt.Title), left+12, y+menuRow/2-7)
	}
}
