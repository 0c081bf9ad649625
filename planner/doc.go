// Package planner implements the two work-distribution strategies from
// spec.md §4.E/§4.F over the upper triangle of class-pair tasks produced
// by package partition: a balanced recursive bisection with a
// barrier-synchronized worker pool, and a self-service FIFO work queue.
//
// Both strategies hand out the same Task type, whose Pairs method
// enumerates the class pairs it covers; package engine drives each
// strategy with its own worker loop.
package planner
