// Package halting shows, by a diagonal construction, that no procedure can
// decide for every program and input whether the program freezes.
//
// Suppose WillFreeze(f, x) answered correctly whether f(x) runs forever.
// Build opposite: applied to f, it asks WillFreeze(f, f) and then does the
// other thing. It returns at once if the answer is "freezes", and loops
// forever if the answer is "halts". Now ask about opposite(opposite).
//
// If WillFreeze(opposite, opposite) says it freezes, opposite returns false
// immediately, so it halts and the prediction was wrong.
//
// If WillFreeze(opposite, opposite) says it halts, opposite enters a loop
// with no exit, so it freezes and the prediction was wrong again.
//
// Either answer is wrong, so WillFreeze cannot exist. Refute replays this
// argument against any concrete Predictor and reports the Contradiction.
package halting
