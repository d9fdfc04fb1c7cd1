// Package verilatorrun shells out to a Verilog/SystemVerilog elaboration
// front end to produce the flattened AST document that package ingest
// consumes, per the flag-for-flag invocation described in spec §6.
package verilatorrun
