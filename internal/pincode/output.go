package pincode

// ResultReceiver is notified once all slots of a decorator are filled.
type ResultReceiver interface {
	ProvideResult(d *Decorator, result string)
}

// ResultReceiverFunc adapts a function to a ResultReceiver.
type ResultReceiverFunc func(d *Decorator, result string)

// ProvideResult calls f(d, result).
func (f ResultReceiverFunc) ProvideResult(d *Decorator, result string) {
	f(d, result)
}
