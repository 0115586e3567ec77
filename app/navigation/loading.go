package navigation

import "sync"

// LoadingController keeps the single loading flag shown by the spinner.
// Errors hide the spinner the same way successful completions do.
type LoadingController struct {
	mu       sync.Mutex
	loading  bool
	onChange func(loading bool)
}

func NewLoadingController(onChange func(loading bool)) *LoadingController {
	return &LoadingController{onChange: onChange}
}

func (c *LoadingController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Attach subscribes to router and returns the func that detaches every
// handler it registered. Callers should defer it.
func (c *LoadingController) Attach(router *Router) func() {
	unsubscribers := []func(){
		router.On(RouteChangeStart, func(string, error) { c.set(true) }),
		router.On(RouteChangeComplete, func(string, error) { c.set(false) }),
		router.On(RouteChangeError, func(string, error) { c.set(false) }),
	}
	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}

func (c *LoadingController) set(loading bool) {
	c.mu.Lock()
	changed := c.loading != loading
	c.loading = loading
	onChange := c.onChange
	c.mu.Unlock()

	if changed && onChange != nil {
		onChange(loading)
	}
}
