package main

import (
	"log/slog"

	"github.com/dmitrymomot/signalkit/core/signal"
)

// emitter owns the published signals.
type emitter struct {
	click    *signal.Signal[int]
	test     *signal.Signal[signal.Pair[int, float32]]
	voidTest *signal.Signal[signal.Void]
	redirect *signal.Signal[bool]
}

func newEmitter(cfg signal.Config) *emitter {
	base := signal.WithConfig(cfg)
	return &emitter{
		click:    signal.New[int](base, signal.WithCapacity(2), signal.WithName("emitter.click")),
		test:     signal.New[signal.Pair[int, float32]](base, signal.WithName("emitter.test")),
		voidTest: signal.New[signal.Void](base, signal.WithName("emitter.voidTest")),
		redirect: signal.New[bool](base, signal.WithName("emitter.redirect")),
	}
}

// baseReceiver exposes one slot per emitter signal.
type baseReceiver struct {
	log *slog.Logger

	clicks    int
	tests     int
	voids     int
	redirects int

	onClick    *signal.MethodSlot[baseReceiver, int]
	test       *signal.MethodSlot[baseReceiver, signal.Pair[int, float32]]
	voidTest   *signal.MethodSlot[baseReceiver, signal.Void]
	onRedirect *signal.MethodSlot[baseReceiver, bool]
}

func newBaseReceiver(log *slog.Logger) *baseReceiver {
	r := &baseReceiver{log: log}
	r.onClick = signal.NewMethodSlot(r, (*baseReceiver).handleClick)
	r.test = signal.NewMethodSlot(r, (*baseReceiver).handleTest)
	r.voidTest = signal.NewMethodSlot(r, (*baseReceiver).handleVoid)
	r.onRedirect = signal.NewMethodSlot(r, (*baseReceiver).handleRedirect)
	return r
}

func (r *baseReceiver) handleClick(i int) {
	r.clicks++
	r.log.Info("base receiver clicked", slog.Int("i", i))
}

func (r *baseReceiver) handleTest(p signal.Pair[int, float32]) {
	r.tests++
	r.log.Info("base receiver test", slog.Int("i", p.First), slog.Float64("j", float64(p.Second)))
}

func (r *baseReceiver) handleVoid(signal.Void) {
	r.voids++
	r.log.Info("base receiver void test")
}

func (r *baseReceiver) handleRedirect(status bool) {
	r.redirects++
	r.log.Info("redirected emitter -> second receiver -> base receiver", slog.Bool("status", status))
}

// secondReceiver listens to clicks and relays redirects through its own signal.
type secondReceiver struct {
	log    *slog.Logger
	clicks int

	onClick    *signal.MethodSlot[secondReceiver, int]
	onRedirect *signal.Signal[bool]
}

func newSecondReceiver(log *slog.Logger, cfg signal.Config) *secondReceiver {
	r := &secondReceiver{
		log:        log,
		onRedirect: signal.New[bool](signal.WithConfig(cfg), signal.WithName("second.onRedirect")),
	}
	r.onClick = signal.NewMethodSlot(r, (*secondReceiver).handleClick)
	return r
}

func (r *secondReceiver) handleClick(i int) {
	r.clicks++
	r.log.Info("second receiver clicked", slog.Int("i", i))
}

// thirdReceiver never gets a click: the emitter's click signal is full by then.
type thirdReceiver struct {
	log    *slog.Logger
	clicks int

	onClick *signal.MethodSlot[thirdReceiver, int]
}

func newThirdReceiver(log *slog.Logger) *thirdReceiver {
	r := &thirdReceiver{log: log}
	r.onClick = signal.NewMethodSlot(r, (*thirdReceiver).handleClick)
	return r
}

func (r *thirdReceiver) handleClick(i int) {
	r.clicks++
	r.log.Info("third receiver clicked", slog.Int("i", i))
}
