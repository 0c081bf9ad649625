// Package dmatrix computes the irredundant difference matrix and
// companion column-weight vector of a labeled training set.
//
// Rows sharing a label are grouped into equivalence classes (package
// partition). Every cross-class pair of rows is turned into a
// position-wise difference vector and a per-column weight delta (package
// block), and fed through a dominance filter that keeps only the
// difference vectors no other stored vector generalizes (package
// accumulator). Two interchangeable strategies distribute the resulting
// class-pair work across goroutines: a barrier-synchronized balanced
// bisection and a self-service work queue (package planner), both driven
// by the single entry point in package engine.
//
// Subpackages:
//
//	row/        — fixed-width integer row values, DASH sentinel, difference/includes
//	partition/  — equivalence-class partitioning of a training set
//	block/      — per-pair difference and weight-delta computation
//	accumulator/ — concurrency-safe, dominance-filtered row + weight collection
//	planner/    — bisection and work-queue task distribution
//	engine/     — orchestration: Run(ctx, dataset, options)
//	dataio/     — text codec for training sets and results
//	config/     — YAML-backed tunables
//	trace/      — injectable timing/event observer
//	cmd/dmatrix/ — CLI driver
package dmatrix
