package calm

import "testing"

type routeCounter struct {
	built map[string]int
}

func (rc *routeCounter) route(name string) Route {
	return Route{Name: name, Title: "Scene " + name, New: func() Scene {
		rc.built[name]++
		return &fakeScene{}
	}}
}

func newTestRouter(t *testing.T) (*Host, *Router, *routeCounter) {
	t.Helper()
	h := NewHost()
	h.SetViewport(400, 400, 1)
	rc := &routeCounter{built: map[string]int{}}
	r := NewRouter(h, []Route{rc.route("a"), rc.route("b"), rc.route("c")}, WithRand(NewRand(1)))
	return h, r, rc
}

func TestRouterNavigate(t *testing.T) {
	h, r, rc := newTestRouter(t)
	if r.Current() != HomeRoute {
		t.Fatalf("Current = %q", r.Current())
	}
	if h.ListenerCount() != 1 {
		t.Fatalf("home should listen for menu clicks, got %d listeners", h.ListenerCount())
	}

	var changes []string
	r.OnChange(func(route, _ string) { changes = append(changes, route) })

	r.Navigate("a")
	r.Navigate("a")
	if rc.built["a"] != 1 {
		t.Errorf("same-route navigate rebuilt the scene: %d", rc.built["a"])
	}
	if r.Current() != "a" || h.LayerCount() != 1 || h.ListenerCount() != 2 {
		t.Errorf("current %q layers %d listeners %d", r.Current(), h.LayerCount(), h.ListenerCount())
	}

	r.Navigate("b")
	if r.Current() != "b" || h.PendingFrames() != 1 {
		t.Errorf("current %q frames %d", r.Current(), h.PendingFrames())
	}

	r.Navigate("missing")
	if r.Current() != HomeRoute || h.LayerCount() != 0 || h.PendingFrames() != 0 || h.ListenerCount() != 1 {
		t.Errorf("unknown route: current %q layers %d frames %d listeners %d",
			r.Current(), h.LayerCount(), h.PendingFrames(), h.ListenerCount())
	}
	r.Navigate(HomeRoute)

	want := []string{"a", "b", HomeRoute}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestRouterMenuClick(t *testing.T) {
	h, r, rc := newTestRouter(t)
	// Second row of the picker.
	h.InjectClick(200, menuTop+menuRow+menuRow/2)
	h.Step(0)
	h.Step(16)
	if r.Current() != "b" || rc.built["b"] != 1 {
		t.Errorf("current %q built %v", r.Current(), rc.built)
	}

	// Clicks inside a mounted scene no longer reach the picker.
	h.InjectClick(200, menuTop+menuRow/2)
	h.Step(32)
	h.Step(48)
	if r.Current() != "b" {
		t.Errorf("scene click changed route to %q", r.Current())
	}
}

func TestRouterMenuIndex(t *testing.T) {
	_, r, _ := newTestRouter(t)
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"first row", 200, menuTop + 1, 0},
		{"third row", 200, menuTop + 2*menuRow + 1, 2},
		{"past the last row", 200, menuTop + 3*menuRow + 1, -1},
		{"above the menu", 200, menuTop - 1, -1},
		{"left of the menu", 10, menuTop + 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.menuIndex(tt.x, tt.y); got != tt.want {
				t.Errorf("menuIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRouterHomeButton(t *testing.T) {
	h := NewHost()
	h.SetHeaderHeight(40)
	h.SetViewport(400, 440, 1)
	rc := &routeCounter{built: map[string]int{}}
	r := NewRouter(h, []Route{rc.route("a")})
	r.Navigate("a")

	h.InjectClick(20, 20)
	h.Step(0)
	if r.Current() != HomeRoute {
		t.Errorf("Current = %q after pressing the home button", r.Current())
	}
	if rt, ok := r.Lookup("a"); !ok || rt.Title != "Scene a" {
		t.Errorf("Lookup = %+v, %v", rt, ok)
	}
	if len(r.Routes()) != 1 {
		t.Errorf("Routes = %d", len(r.Routes()))
	}
}
