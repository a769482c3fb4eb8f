package compiler

import "log"

// debugging mirrors the decoder package's own trace switch (and, before
// that, the teacher's heetch/avro debugging/debugf pair): flip it on
// locally to trace type dispatch while debugging a schema that compiles to
// the wrong graph. Off by default, and free when off.
const debugging = false

func debugf(f string, a ...interface{}) {
	if debugging {
		log.Printf(f, a...)
	}
}
