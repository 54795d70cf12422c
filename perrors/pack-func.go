/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"github.com/haraldrudell/gridquery/pruntime"
)

const e116PackFuncStackFrames = 1

// PackFunc returns the package name and function name
// of the caller:
//
//	mypackage.MyFunc
func PackFunc() (packageDotFunction string) {
	var frames = 1 // count PackFunc frame
	return PackFuncN(frames)
}

// PackFuncN returns the package name and function name
// of a caller skipFrames stack frames away
func PackFuncN(skipFrames int) (packageDotFunction string) {
	if skipFrames < 0 {
		skipFrames = 0
	}
	var cL = pruntime.NewCodeLocation(e116PackFuncStackFrames + skipFrames)
	packageDotFunction = cL.Name()
	if pack := cL.Package(); pack != "main" {
		packageDotFunction = pack + "." + packageDotFunction
	}
	return
}
