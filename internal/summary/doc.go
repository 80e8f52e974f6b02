// Package summary computes completion statistics over a fixed set of tasks.
//
// The computation is a pure function of the task list and an evaluation
// instant; Service wires it to a TaskSource and a Clock for the HTTP layer.
package summary
