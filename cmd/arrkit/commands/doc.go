// Package commands implements the arrkit command tree.
//
// Every subcommand reads one YAML or JSON document (from --input or stdin),
// applies a single arrkit operation and writes the result as YAML, or as JSON
// with --output json. Scalar parameters are passed as flags:
//
//	echo '[1, 2, 3, 4, 5]' | arrkit chunks --size 2
//	arrkit interval --start 1 --end 5 --output json
//	echo '[{kids: [a, b]}, {kids: [c]}]' | arrkit select-many --expr 'item.kids'
package commands
