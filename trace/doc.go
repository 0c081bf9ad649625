// Package trace provides the injectable timing/event observer called for
// in Design Notes §9: the original C++ TimeCollector was global process
// state woven through the source; here it is an interface passed in by
// the caller, with a Noop implementation costing nothing when timing
// isn't wanted and a Log implementation for diagnostic runs.
package trace
