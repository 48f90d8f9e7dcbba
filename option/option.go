package option

import "github.com/ayanami-desu/cipherkit/common"

// Handler is a command-line action bound to a flag. Handlers run in
// priority order until one of them succeeds.
type Handler interface {
	Name() string
	Handle() error
	Priority() int
}

var handlers = make(map[string]Handler)

func RegisterHandler(h Handler) {
	handlers[h.Name()] = h
}

// PopOptionHandler removes and returns the highest-priority handler.
func PopOptionHandler() (Handler, error) {
	var max Handler
	for _, h := range handlers {
		if max == nil || max.Priority() < h.Priority() {
			max = h
		}
	}
	if max == nil {
		return nil, common.NewError("no option left")
	}
	delete(handlers, max.Name())
	return max, nil
}
