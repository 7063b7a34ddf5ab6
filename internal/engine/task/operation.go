// Released under an MIT license. See LICENSE.

package task

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
)

// Op represents a single step of a task.
type Op interface {
	Perform(*T) Op
}

func opString(o Op) string {
	if o == nil {
		return "<nil>"
	}

	switch o := o.(type) {
	case Action:
		return funcName(o)
	case *activation:
		return "activation(" + o.Callee() + ")"
	case push:
		return "push(" + literal.String(o.value) + ")"
	case *rethrow:
		return "rethrow(" + o.cause.Kind.String() + ")"
	case *transfer:
		return "transfer(" + strconv.Itoa(len(o.pending)) + ")"
	case *registers:
		fields := []string{}

		if o.code != nil {
			fields = append(fields, "code")
		}

		if o.dump != nil {
			fields = append(fields, "dump")
		}

		if o.frame != nil {
			fields = append(fields, "frame")
		}

		if o.stack != nil {
			fields = append(fields, "stack")
		}

		return "Restore(" + strings.Join(fields, ", ") + ")"
	}

	return "<unknown>"
}

// Get the function i's name. Useful for debugging.
func funcName(i interface{}) string {
	n := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()

	a := strings.Split(n, ".")

	l := len(a)
	if l == 0 {
		return n
	}

	return a[l-1]
}
