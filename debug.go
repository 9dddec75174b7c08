package bastion

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// globalDebug mirrors the most recently set Scene debug flag so that tree
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugLogger receives tree warnings while globalDebug is set.
var debugLogger logrus.FieldLogger = logrus.StandardLogger()

// debugCheckDisposed panics with a descriptive message when a disposed
// object is used in a tree operation.
func debugCheckDisposed(o *GameObject, op string) {
	if o.disposed {
		panic(fmt.Sprintf("bastion debug: %s on disposed object %q (ID %d)", op, o.Name, o.ID))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *GameObject) {
	depth := 0
	for p := o; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.WithFields(logrus.Fields{
			"object": o.Name,
			"depth":  depth,
			"limit":  debugMaxTreeDepth,
		}).Warn("tree depth exceeds limit")
	}
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(o *GameObject) {
	if len(o.children) > debugMaxChildCount {
		debugLogger.WithFields(logrus.Fields{
			"object":   o.Name,
			"children": len(o.children),
			"limit":    debugMaxChildCount,
		}).Warn("child count exceeds limit")
	}
}
