// Package discovery enumerates the command-line shells installed on a host.
//
// Two strategies exist. WindowsStyle probes a fixed catalog of executable names
// against each directory of the search path. PosixStyle trusts the shell registry
// file (/etc/shells). Exactly one runs per process, picked by Select.
//
// Neither strategy returns an error. A missing variable, an unreadable registry or
// a candidate found nowhere all degrade to fewer results, and an empty result is a
// valid answer the caller should present as "no shells detected".
package discovery
