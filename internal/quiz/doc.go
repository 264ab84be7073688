// Package quiz implements the multiple-choice quiz state machine.
//
// A [Session] walks an ordered, immutable question set one question at a
// time. Each question accepts exactly one answer; the session then stays
// locked until it is advanced. After the last question the session enters
// the result phase, where [Session.Result] reports the score and verdict.
//
//	s, _ := quiz.NewSession(questions)
//	s.Select(2)  // locks the current question, scores if correct
//	s.Advance()  // next question, or the result phase
//
// Inputs that arrive in the wrong phase (answering twice, advancing before
// answering, an out-of-range option) are ignored and reported through the
// boolean return values, never as errors.
//
// # Thread Safety
//
// Session is NOT thread-safe. It is meant to be driven from a single event
// loop such as a Bubble Tea Update function.
package quiz
