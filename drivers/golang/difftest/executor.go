package difftest

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/emenda-labs/swapcheck/core/compat"
)

// DefaultCallTimeout is the hard wall-clock deadline for one call.
const DefaultCallTimeout = 5 * time.Second

// execGate serializes bounded executions. The watchdog timer is
// process-scoped state; only one call may ever be pending on it.
var execGate sync.Mutex

// Executor invokes callables under a hard wall-clock deadline. The
// deadline fires even when the callee is a non-yielding busy loop: the
// call runs on a watchdog-supervised goroutine and the executor returns
// a timeout outcome while the runaway call is abandoned.
type Executor struct {
	Timeout time.Duration
}

// NewExecutor builds an Executor with the default call timeout.
func NewExecutor() *Executor {
	return &Executor{Timeout: DefaultCallTimeout}
}

// Call invokes fn with one synthesized input case and captures the
// outcome. Panics and returned errors become error outcomes; exceeding
// the deadline yields a distinct timeout kind. The watchdog timer is
// stopped on every exit path and elapsed time is recorded regardless of
// outcome.
func (e *Executor) Call(fn reflect.Value, input InputCase) compat.ExecutionOutcome {
	execGate.Lock()
	defer execGate.Unlock()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	start := time.Now()

	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return compat.ExecutionOutcome{
			ElapsedSeconds: time.Since(start).Seconds(),
			ErrorKind:      compat.ErrorUncallable,
			ErrorMessage:   "value is not callable",
		}
	}

	done := make(chan compat.ExecutionOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- compat.ExecutionOutcome{
					ElapsedSeconds: time.Since(start).Seconds(),
					ErrorKind:      compat.ErrorPanic,
					ErrorMessage:   fmt.Sprint(r),
				}
			}
		}()

		args := materialize(fn.Type(), input)
		results := fn.Call(args)
		done <- splitResults(results, start)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case outcome := <-done:
		return outcome
	case <-timer.C:
		return compat.ExecutionOutcome{
			ElapsedSeconds: time.Since(start).Seconds(),
			ErrorKind:      compat.ErrorTimeout,
			ErrorMessage:   fmt.Sprintf("call exceeded %s deadline", timeout),
		}
	}
}

// splitResults converts a call's return values into an outcome. A
// trailing non-nil error marks the outcome errored with kind "error";
// otherwise results collapse to nil, a single value, or an ordered
// sequence.
func splitResults(results []reflect.Value, start time.Time) compat.ExecutionOutcome {
	elapsed := time.Since(start).Seconds()

	if n := len(results); n > 0 {
		last := results[n-1]
		if last.Type().Implements(errorInterface) {
			if !last.IsNil() {
				return compat.ExecutionOutcome{
					ElapsedSeconds: elapsed,
					ErrorKind:      compat.ErrorReturned,
					ErrorMessage:   last.Interface().(error).Error(),
				}
			}
			results = results[:n-1]
		}
	}

	var value any
	switch len(results) {
	case 0:
		value = nil
	case 1:
		value = results[0].Interface()
	default:
		seq := make([]any, len(results))
		for i, r := range results {
			seq[i] = r.Interface()
		}
		value = seq
	}

	return compat.ExecutionOutcome{Value: value, ElapsedSeconds: elapsed}
}

var errorInterface = reflect.TypeOf((*error)(nil)).Elem()
