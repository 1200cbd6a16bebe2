package parsekit

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Trace returns an Observer that reports every outcome to `logger`.
// Successes are logged at debug level and failures at info level, so
// a logger at info level only shows what didn't match.
//
//	number := parsekit.OneOf[tag]("0123456789").OneOrMore().Log(parsekit.Trace[tag](log))
func Trace[T comparable](logger logrus.FieldLogger) Observer[T] {
	return func(o Outcome[T]) {
		fields := logrus.Fields{
			"parser": o.Parser.String(),
			"offset": o.Start.Offset(),
			"line":   o.Start.Line() + 1,
			"column": o.Start.Column() + 1,
		}
		if o.Ok() {
			fields["consumed"] = o.Consumed()
			logger.WithFields(fields).Debug("matched")
			return
		}
		fields["error_at"] = o.Err.Location.String()
		if labels := o.Err.Labels(); len(labels) > 0 {
			fields["labels"] = fmt.Sprintf("%v", labels)
		}
		if o.Err.HasMessage() {
			fields["message"] = o.Err.Message
		}
		logger.WithFields(fields).Info("no match")
	}
}
