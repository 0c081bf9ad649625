// Package dataio reads and writes the line-oriented text format that
// carries a training set into this repository and its computed result
// back out. The format is modeled directly on
// original_source/src/input_matrix.cpp's printFeatureMatrix and
// printImageMatrix: block headers introduced by a "# " comment line, a
// "rows cols" size line, then one row per line of space-separated
// integers with "-" standing in for row.Dash.
package dataio
