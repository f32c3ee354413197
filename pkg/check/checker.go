package check

// Checker is implemented by anything that can produce a Result.
//
// The only implementation in this repo is subproc.Check, which runs an
// external command and reads its exit status. The interface exists so the
// suite runner never has to know how a result was produced.
type Checker interface {
	Run() Result
}
