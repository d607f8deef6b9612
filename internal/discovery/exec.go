package discovery

// Executor runs background work for the async discovery variants.
type Executor interface {
	Go(fn func())
}

// Dispatcher delivers async results and progress to the caller.
type Dispatcher interface {
	Dispatch(fn func())
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(fn func())

// Go implements Executor.
func (f ExecutorFunc) Go(fn func()) { f(fn) }

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// goroutineExecutor starts one goroutine per invocation.
type goroutineExecutor struct{}

func (goroutineExecutor) Go(fn func()) { go fn() }

// directDispatcher calls fn on the worker goroutine.
type directDispatcher struct{}

func (directDispatcher) Dispatch(fn func()) { fn() }
