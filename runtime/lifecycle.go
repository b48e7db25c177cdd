package runtime

import "go.uber.org/zap"

// Lifecycle hooks run user code. In strict mode panics propagate to
// aid debugging and fast failure; otherwise they are recovered and
// logged so one misbehaving component cannot take the tree down.

func (r *TreeRenderer) callOnInit(initializer Initializer, key string) {
	defer r.recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *TreeRenderer) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer r.recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

func (r *TreeRenderer) callOnDestroy(cleaner Cleaner, key string) {
	defer r.recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func (r *TreeRenderer) recoverLifecycle(hook, key string) {
	if r.strict {
		return
	}
	if rec := recover(); rec != nil {
		r.log.Error("lifecycle hook panicked",
			zap.String("hook", hook),
			zap.String("component", key),
			zap.Any("panic", rec),
		)
	}
}
